// Package config loads the overlay client's configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (see Default)
//  2. The TOML file at the given path, $LYRICS_OVERLAY_CONFIG, or
//     ~/.config/lyrics-overlay/config.toml
//  3. LYRICS_* environment variables
//
// A missing config file is not an error. Empty values in the file keep the
// default. LoadEnvFiles can be called first to populate the environment from
// .env or ~/.lyrics.env, the same files the lyrics backend reads.
//
// # TOML Format
//
//	socket_path = "/tmp/lyrics_app.sock"
//	reconnect_delay_ms = 3000
//	max_reconnect_attempts = 0   # 0 = retry forever
//	placeholder_after = 3        # failed attempts before "Disconnected" shows; 0 disables
//	poll_timeout_ms = 100
//	max_display_length = 50
//	theme = "Teal"
//	log_file = "~/.local/state/lyrics-overlay/overlay.log"
//	log_level = "info"
//
// Tilde expansion is applied to socket_path and log_file.
package config
