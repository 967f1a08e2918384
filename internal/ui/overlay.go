package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	statusBacklog   = 16
	shutdownTimeout = 2 * time.Second
)

// ErrNotTerminal is returned by Overlay.Initialize when the output is not a
// terminal.
var ErrNotTerminal = errors.New("overlay needs an interactive terminal (try --console)")

// OverlayOptions configure an Overlay.
type OverlayOptions struct {
	Theme     string
	MaxLength int
	Input     io.Reader       // nil uses stdin
	Output    io.Writer       // nil uses stdout
	Logger    *zerolog.Logger // nil discards
}

// Overlay is the interactive surface: a full-screen Bubble Tea program that
// shows the current lyric centered in a themed panel.
//
// The program runs on its own goroutines. Updates are handed over through
// small mailboxes so DisplayLyrics and DisplayStatus never block, and close
// requests flow back through PumpEvents.
type Overlay struct {
	opts OverlayOptions
	log  zerolog.Logger

	program *tea.Program
	lyrics  chan string
	status  chan string
	closeCh chan struct{}
	exited  chan struct{}
	runErr  error
	killed  bool

	running bool
	isTerm  func(io.Writer) bool
}

// NewOverlay creates an Overlay. Nothing is drawn until Initialize.
func NewOverlay(opts OverlayOptions) *Overlay {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	o := &Overlay{
		opts:    opts,
		log:     zerolog.Nop(),
		lyrics:  make(chan string, 1),
		status:  make(chan string, statusBacklog),
		closeCh: make(chan struct{}, 1),
		exited:  make(chan struct{}),
		running: true,
		isTerm:  isTerminal,
	}
	if opts.Logger != nil {
		o.log = opts.Logger.With().Str("component", "overlay").Logger()
	}
	return o
}

// Initialize starts the Bubble Tea program. It fails when the output is not
// a terminal.
func (o *Overlay) Initialize() error {
	o.log.Info().Msg("initializing overlay")
	if !o.isTerm(o.opts.Output) {
		return ErrNotTerminal
	}

	model := NewModel(GetTheme(o.opts.Theme), o.opts.MaxLength, o.requestClose)
	o.program = tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(o.opts.Input),
		tea.WithOutput(o.opts.Output),
	)

	go func() {
		_, err := o.program.Run()
		o.runErr = err
		close(o.exited)
	}()
	go o.forward()

	o.log.Info().Msg("overlay window created and displayed")
	return nil
}

// DisplayLyrics replaces the lyric shown. Only the newest pending value is
// kept.
func (o *Overlay) DisplayLyrics(text string) {
	o.log.Debug().Str("lyrics", text).Msg("displaying lyrics")
	offer(o.lyrics, text)
}

// DisplayStatus logs status and shows it on the status line.
func (o *Overlay) DisplayStatus(text string) {
	o.log.Info().Msg(text)
	offer(o.status, text)
}

// PumpEvents processes close requests and program exit without blocking.
func (o *Overlay) PumpEvents() {
	select {
	case <-o.closeCh:
		o.log.Info().Msg("overlay close requested")
		o.running = false
	case <-o.exited:
		if err := programError(o.runErr, false); err != nil {
			o.log.Error().Err(err).Msg("overlay program exited")
		}
		o.running = false
	default:
	}
}

// ShouldContinue reports false once the overlay has been closed.
func (o *Overlay) ShouldContinue() bool {
	return o.running
}

// Cleanup stops the program and restores the terminal. It returns the
// program's error when it died on its own, for example because input failed.
func (o *Overlay) Cleanup() error {
	o.running = false
	if o.program == nil {
		return nil
	}
	o.program.Quit()
	select {
	case <-o.exited:
	case <-time.After(shutdownTimeout):
		o.log.Warn().Msg("overlay did not stop in time; killing it")
		o.killed = true
		o.program.Kill()
		<-o.exited
	}
	return programError(o.runErr, o.killed)
}

// programError filters the error returned by the Bubble Tea program. A
// signal-driven interrupt and a kill issued by Cleanup are normal shutdowns.
func programError(err error, killed bool) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted):
		return nil
	case killed && errors.Is(err, tea.ErrProgramKilled):
		return nil
	}
	return fmt.Errorf("overlay program: %w", err)
}

func (o *Overlay) requestClose() {
	select {
	case o.closeCh <- struct{}{}:
	default:
	}
}

func (o *Overlay) forward() {
	for {
		select {
		case text := <-o.lyrics:
			o.program.Send(lyricsMsg(text))
		case text := <-o.status:
			o.program.Send(statusMsg(text))
		case <-o.exited:
			return
		}
	}
}

// offer puts v into box, discarding the oldest queued value when full.
func offer(box chan string, v string) {
	for {
		select {
		case box <- v:
			return
		default:
		}
		select {
		case <-box:
		default:
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
