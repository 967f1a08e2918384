package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsole_InitializePrintsBanner(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 50)
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Console Mode") {
		t.Fatalf("banner = %q, want it to mention Console Mode", buf.String())
	}
}

func TestConsole_DisplayLyricsClearsAndCenters(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 50)

	c.DisplayLyrics("Hello World")

	out := buf.String()
	if !strings.HasPrefix(out, clearScreen) {
		t.Fatalf("output = %q, want it to start with the clear-screen sequence", out)
	}

	var line string
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "Hello World") {
			line = l
		}
	}
	if strings.TrimSpace(line) != "♪ Hello World ♪" {
		t.Fatalf("lyric line = %q, want decorated lyric", line)
	}
	if !strings.HasPrefix(line, strings.Repeat(" ", 30)) {
		t.Fatalf("lyric line = %q, want it centered on an 80-column fallback", line)
	}
}

func TestConsole_DisplayLyricsTruncates(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 50)

	c.DisplayLyrics(strings.Repeat("a", 80))

	if !strings.Contains(buf.String(), strings.Repeat("a", 47)+"... ♪") {
		t.Fatalf("output = %q, want truncated lyric", buf.String())
	}
	if strings.Contains(buf.String(), strings.Repeat("a", 48)) {
		t.Fatalf("output contains more than 47 characters of lyric")
	}
}

func TestConsole_MultiLineLyricsKeepEveryLine(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 50)

	c.DisplayLyrics("first line of the verse here ok\nsecond line of the verse ok")

	out := buf.String()
	for _, want := range []string{"♪ first line of the verse here ok ♪", "♪ second line of the verse ok ♪"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "...") {
		t.Errorf("output truncated a line that fits:\n%s", out)
	}
}

func TestConsole_UsesWidthFunc(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 50)
	c.width = func() int { return 20 }

	c.DisplayLyrics("hi")

	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.Contains(l, "hi") {
			if strings.HasPrefix(l, strings.Repeat(" ", 10)) {
				t.Fatalf("line %q padded as if wider than 20 columns", l)
			}
			return
		}
	}
	t.Fatal("lyric line not found")
}

func TestConsole_StatusAndCleanup(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, 50)

	c.DisplayStatus("Connected to backend.")
	if err := c.Cleanup(); err != nil {
		t.Fatalf("Cleanup returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Connected to backend.\n") {
		t.Fatalf("output = %q, want status line", out)
	}
	if !strings.Contains(out, "Console shutting down...") {
		t.Fatalf("output = %q, want shutdown message", out)
	}
	if !c.ShouldContinue() {
		t.Fatal("ShouldContinue() = false, want true")
	}
}
