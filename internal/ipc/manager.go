package ipc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/lyrics-overlay/internal/lyrics"
	"github.com/five82/lyrics-overlay/internal/state"
)

// ErrAttemptsExhausted is returned by Reconnect once the configured attempt
// cap has been reached.
var ErrAttemptsExhausted = errors.New("maximum reconnection attempts reached")

// Dialer opens stream connections. *net.Dialer satisfies it; tests swap in
// fakes.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Ensure net.Dialer implements Dialer at compile time.
var _ Dialer = (*net.Dialer)(nil)

// Presenter receives what the manager wants shown. ui.Sink implementations
// satisfy it.
type Presenter interface {
	DisplayLyrics(text string)
	DisplayStatus(text string)
}

const (
	readBufferSize        = 4096
	defaultSocketPath     = "/tmp/lyrics_app.sock"
	defaultReconnectDelay = 3 * time.Second
	defaultDialTimeout    = time.Second
)

// Options configure a Manager.
type Options struct {
	SocketPath       string
	ReconnectDelay   time.Duration
	MaxAttempts      int // zero means unlimited
	PlaceholderAfter int // zero disables the placeholder
	DialTimeout      time.Duration

	Dialer Dialer           // nil uses a net.Dialer with DialTimeout
	Now    func() time.Time // nil uses time.Now
	Logger *zerolog.Logger  // nil discards
}

// Manager owns the backend socket: it connects, reads lyric updates, tears
// the connection down on close or error, and paces reconnect attempts with
// a fixed delay.
//
// A Manager is driven by a single goroutine and is not safe for concurrent
// use.
type Manager struct {
	socketPath       string
	delay            time.Duration
	maxAttempts      int
	placeholderAfter int
	dialTimeout      time.Duration

	dialer  Dialer
	now     func() time.Time
	log     zerolog.Logger
	out     Presenter
	session *state.Session
	buf     []byte
}

// NewManager builds a disconnected Manager that reports to out.
func NewManager(opts Options, out Presenter) *Manager {
	m := &Manager{
		socketPath:       opts.SocketPath,
		delay:            opts.ReconnectDelay,
		maxAttempts:      opts.MaxAttempts,
		placeholderAfter: opts.PlaceholderAfter,
		dialTimeout:      opts.DialTimeout,
		dialer:           opts.Dialer,
		now:              opts.Now,
		log:              zerolog.Nop(),
		out:              out,
		session:          state.NewSession(),
		buf:              make([]byte, readBufferSize),
	}
	if m.socketPath == "" {
		m.socketPath = defaultSocketPath
	}
	if m.delay <= 0 {
		m.delay = defaultReconnectDelay
	}
	if m.dialTimeout <= 0 {
		m.dialTimeout = defaultDialTimeout
	}
	if m.dialer == nil {
		m.dialer = &net.Dialer{Timeout: m.dialTimeout}
	}
	if m.now == nil {
		m.now = time.Now
	}
	if opts.Logger != nil {
		m.log = opts.Logger.With().Str("component", "ipc").Str("socket", m.socketPath).Logger()
	}
	return m
}

// Connected reports whether a backend connection is open.
func (m *Manager) Connected() bool {
	return m.session.Connected()
}

// Snapshot returns a copy of the session state.
func (m *Manager) Snapshot() state.Snapshot {
	return m.session.Snapshot()
}

// Connect drops any existing connection and dials the backend once. It does
// not retry; Reconnect applies the retry policy.
func (m *Manager) Connect(ctx context.Context) error {
	m.Teardown()
	return m.dial(ctx)
}

func (m *Manager) dial(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, m.dialTimeout)
	defer cancel()

	conn, err := m.dialer.DialContext(dialCtx, "unix", m.socketPath)
	if err != nil {
		return fmt.Errorf("connect %s: %w", m.socketPath, err)
	}

	m.session.Attach(conn)
	m.log.Info().Msg("connected to backend")
	m.out.DisplayStatus("Connected to backend.")
	return nil
}

// Reconnect makes a connection attempt if one is due. It returns the dial
// error when an attempt fails and nil when connected or when the next attempt
// is not due yet. Once the attempt cap is reached it returns
// ErrAttemptsExhausted, but only after the reconnect delay has passed.
func (m *Manager) Reconnect(ctx context.Context) error {
	if m.session.Connected() {
		return nil
	}
	if m.UntilNextAttempt() > 0 {
		return nil
	}
	if m.maxAttempts > 0 && m.session.Attempts() >= m.maxAttempts {
		return ErrAttemptsExhausted
	}

	m.Teardown()
	attempt := m.session.RecordAttempt(m.now())
	m.out.DisplayStatus(fmt.Sprintf("Attempting to connect to backend (attempt %d)...", attempt))

	if err := m.dial(ctx); err != nil {
		m.log.Debug().Err(err).Int("attempt", attempt).Msg("connect failed")
		m.out.DisplayStatus(fmt.Sprintf("Failed to connect. Waiting %s before retry...", describeDelay(m.delay)))
		if m.placeholderAfter > 0 && attempt >= m.placeholderAfter {
			m.show(lyrics.Disconnected)
		}
		return err
	}

	m.out.DisplayStatus("Listening for lyrics... (Press Ctrl+C to exit)")
	return nil
}

// UntilNextAttempt returns how long until Reconnect will dial again. Zero
// means an attempt is due now.
func (m *Manager) UntilNextAttempt() time.Duration {
	last := m.session.LastAttempt()
	if last.IsZero() {
		return 0
	}
	wait := m.delay - m.now().Sub(last)
	if wait < 0 {
		return 0
	}
	return wait
}

// ReadUpdate waits up to timeout for data from the backend and handles the
// result of a single read. It is a no-op while disconnected.
func (m *Manager) ReadUpdate(timeout time.Duration) {
	conn := m.session.Conn()
	if conn == nil {
		return
	}

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		m.fail("Error reading from backend. Will attempt to reconnect...", err)
		return
	}

	n, err := conn.Read(m.buf)
	if n > 0 {
		m.show(lyrics.Normalize(m.buf[:n]))
	}

	switch {
	case err == nil:
	case errors.Is(err, os.ErrDeadlineExceeded):
	case errors.Is(err, io.EOF):
		m.fail("Backend connection closed. Will attempt to reconnect...", err)
	case isHangup(err):
		m.fail("Connection lost. Will attempt to reconnect...", err)
	default:
		m.fail("Error reading from backend. Will attempt to reconnect...", err)
	}
}

// Teardown closes the connection if open, marks the session disconnected,
// and clears the reconnect timer so the next attempt fires immediately.
// It is safe to call repeatedly.
func (m *Manager) Teardown() {
	if err := m.session.Release(); err != nil {
		m.log.Debug().Err(err).Msg("close backend connection")
	}
	m.session.ResetTiming()
}

func (m *Manager) fail(status string, err error) {
	m.log.Warn().Err(err).Msg("backend connection dropped")
	m.out.DisplayStatus(status)
	m.Teardown()
}

func (m *Manager) show(text string) {
	if m.session.SetLyrics(text) {
		m.out.DisplayLyrics(text)
	}
}

func isHangup(err error) bool {
	return errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, net.ErrClosed)
}

func describeDelay(d time.Duration) string {
	if d%time.Second == 0 {
		secs := int(d / time.Second)
		if secs == 1 {
			return "1 second"
		}
		return fmt.Sprintf("%d seconds", secs)
	}
	return d.String()
}
