// Package ui provides the display surfaces for lyric and status updates.
//
// # Sinks
//
// Both surfaces implement Sink and are driven from the event loop's
// goroutine:
//
//   - Console: prints each lyric centered on a cleared terminal screen and
//     statuses as plain lines. It never asks to stop; the process ends on
//     SIGINT/SIGTERM.
//   - Overlay: a full-screen Bubble Tea program showing the lyric in a themed
//     panel with a faint status line underneath. It needs an interactive
//     terminal and also implements EventPumper so close requests (q, esc,
//     ctrl+c) reach the loop.
//
// # Overlay Threading
//
// The Bubble Tea program runs on its own goroutines. DisplayLyrics and
// DisplayStatus drop values into small mailboxes that a forwarder hands to
// the program, so callers never block on rendering. Only the newest pending
// lyric is kept. Close requests travel back through a channel that
// PumpEvents drains without blocking.
//
// # Themes
//
// Teal (default), Nightfox, Kanagawa and Slate. Unknown names fall back to
// Teal. The panel background is painted across every segment with
// bgPainter so styled words do not leave gaps.
//
// # Text Rules
//
// Both surfaces truncate to the configured display width with "..." and
// wrap lines in note glyphs; see package lyrics.
package ui
