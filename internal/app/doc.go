// Package app wires configuration, logging, the display and the connection
// manager together and runs the client's event loop.
//
// # Event Loop
//
// Everything runs on the goroutine that calls Run. Each iteration:
//
//  1. Pumps pending UI events (overlay close requests) and stops when the
//     display no longer wants to continue.
//  2. While disconnected, asks the manager to reconnect. The manager decides
//     whether an attempt is due; the first attempt after a drop is
//     immediate and later ones are spaced by the reconnect delay.
//  3. While connected, performs one read bounded by the poll timeout
//     (default 100ms) so the display stays responsive.
//  4. While still disconnected, sleeps until the next attempt is due, capped
//     at the poll timeout.
//
// The loop ends when the context is cancelled (SIGINT/SIGTERM), the overlay
// is closed, or the optional reconnect cap is reached. None of these are
// errors. Run fails when the config cannot be loaded, the display cannot be
// initialized, or the overlay program dies on its own (for example when its
// input fails).
//
// # Logging
//
// The overlay owns the terminal, so its logs go to a JSON log file
// (default ~/.local/state/lyrics-overlay/overlay.log). Console mode logs to
// stderr and only shows warnings and errors unless log_level is debug or
// trace.
package app
