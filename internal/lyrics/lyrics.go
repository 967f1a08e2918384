// Package lyrics holds the text rules shared by the connection manager and
// the display surfaces.
package lyrics

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// Waiting is shown before the backend has sent anything.
	Waiting = "Waiting for lyrics..."
	// Disconnected replaces stale lyrics once the backend has been
	// unreachable for several attempts.
	Disconnected = "Disconnected from backend. Retrying..."

	ellipsis = "..."
)

// Normalize decodes one read from the backend. The payload is treated as a
// single line even when it contains several; only trailing CR/LF bytes are
// removed. Invalid UTF-8 is replaced with U+FFFD.
func Normalize(raw []byte) string {
	text := strings.ToValidUTF8(string(raw), "�")
	return strings.TrimRight(text, "\r\n")
}

// Truncate shortens text to at most max display cells, ending in "..." when
// anything was cut. A non-positive max disables truncation.
func Truncate(text string, max int) string {
	if max <= 0 || runewidth.StringWidth(text) <= max {
		return text
	}
	if max <= len(ellipsis) {
		return runewidth.Truncate(text, max, "")
	}
	return runewidth.Truncate(text, max, ellipsis)
}

// Lines splits text on newlines and truncates each line to max display
// cells on its own.
func Lines(text string, max int) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = Truncate(line, max)
	}
	return lines
}

// Decorate wraps a lyric line in the note glyphs both surfaces use.
func Decorate(text string) string {
	return "♪ " + text + " ♪"
}
