// Package state holds the Session: the single live connection record the
// connection manager owns for the lifetime of the process.
//
// # Lifecycle
//
// A Session is created once at startup, disconnected, with the lyric text
// set to "Waiting for lyrics...". Only its socket handle churns:
//
//	Disconnected ──Attach──> Connected ──Release──> Disconnected
//
// Release is idempotent and closes the handle at most once, so a Session never
// holds more than one open handle.
//
// # Deduplication
//
// SetLyrics reports whether the text changed. Callers render only on true, so
// repeated identical updates from the backend never redraw.
//
// # Concurrency
//
// Session has no locks. The event loop in package app is the only goroutine
// that touches it; display surfaces receive copies of the text, never the
// Session itself.
package state
