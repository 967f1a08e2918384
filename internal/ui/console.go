package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/five82/lyrics-overlay/internal/lyrics"
)

const (
	defaultTerminalWidth = 80
	clearScreen          = "\033[2J\033[H"
	consoleRule          = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

// Console prints lyrics centered in the terminal, one screen per update.
// It runs until the process is interrupted.
type Console struct {
	out    io.Writer
	maxLen int
	width  func() int
}

// NewConsole returns a Console writing to out. maxLen limits the lyric
// width in display cells; zero disables truncation.
func NewConsole(out io.Writer, maxLen int) *Console {
	c := &Console{out: out, maxLen: maxLen}
	c.width = c.terminalWidth
	return c
}

func (c *Console) Initialize() error {
	_, err := fmt.Fprintf(c.out, "Lyrics Client starting (Console Mode)...\n%s\n", consoleRule)
	return err
}

func (c *Console) DisplayLyrics(text string) {
	lines := lyrics.Lines(text, c.maxLen)
	for i, line := range lines {
		lines[i] = lyrics.Decorate(line)
	}
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(c.width(), lipgloss.Center, strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	_, _ = io.WriteString(c.out, b.String())
}

func (c *Console) DisplayStatus(text string) {
	_, _ = fmt.Fprintln(c.out, text)
}

// ShouldContinue always reports true; the console stops on a signal.
func (c *Console) ShouldContinue() bool {
	return true
}

func (c *Console) Cleanup() error {
	_, err := fmt.Fprintln(c.out, "\nConsole shutting down...")
	return err
}

func (c *Console) terminalWidth() int {
	f, ok := c.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
