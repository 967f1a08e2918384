// Package ipc implements the connection manager for the lyrics backend's
// Unix domain socket.
//
// # Wire Format
//
// The backend writes raw UTF-8 text with no framing. Every read of up to
// 4096 bytes is treated as the current lyric line: trailing CR/LF bytes are
// trimmed and nothing is split further.
//
// # Lifecycle
//
//	Disconnected ──Reconnect (dial ok)──> Connected
//	Connected ──EOF | hang-up | read error──> Disconnected
//
// The Manager starts disconnected and has no terminal state. The event loop
// in package app calls Reconnect while disconnected and ReadUpdate while
// connected, once per iteration.
//
// # Retry Policy
//
// Attempts use a fixed delay, not exponential backoff. The first attempt
// fires immediately and so does the first attempt after a connection drops,
// because Teardown clears the timer. Failed attempts are spaced by at least
// ReconnectDelay. MaxAttempts caps consecutive failures (0 = unlimited);
// once reached, Reconnect returns ErrAttemptsExhausted after one more
// reconnect delay, so the last failure still gets its full wait. After
// PlaceholderAfter consecutive failures the manager displays the
// disconnected placeholder so stale lyrics do not linger.
//
// # Bounded Wait
//
// ReadUpdate sets a read deadline before reading, so a quiet backend costs
// at most one poll timeout per iteration and the caller can keep pumping UI
// events in between.
package ipc
