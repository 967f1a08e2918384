package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/five82/lyrics-overlay/internal/config"
	"github.com/five82/lyrics-overlay/internal/ipc"
	"github.com/five82/lyrics-overlay/internal/ui"
)

// Options configure the overlay client.
type Options struct {
	ConfigPath string    // empty uses $LYRICS_OVERLAY_CONFIG or the default location
	Console    bool      // plain terminal output instead of the overlay
	Output     io.Writer // nil uses stdout
}

// Run starts the display and drives the connection loop until the context is
// cancelled, the display is closed, or the reconnect cap is reached. It
// returns an error when startup fails or the display dies while running.
func Run(ctx context.Context, opts Options) error {
	envFile, envErr := config.LoadEnvFiles()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog := newLogger(cfg, opts.Console)
	defer closeLog()

	if envErr != nil {
		logger.Warn().Err(envErr).Msg("env file ignored")
	} else if envFile != "" {
		logger.Debug().Str("path", envFile).Msg("loaded env file")
	}

	sink := newSink(cfg, opts, &logger)
	if err := sink.Initialize(); err != nil {
		return fmt.Errorf("initialize display: %w", err)
	}
	logger.Info().Bool("console", opts.Console).Str("socket", cfg.SocketPath).Msg("lyrics client started")

	return serve(ctx, cfg, sink, &logger)
}

// serve runs the event loop against an initialized sink and shuts it down.
// A display that failed while running is reported as an error.
func serve(ctx context.Context, cfg config.Config, sink ui.Sink, logger *zerolog.Logger) error {
	mgr := ipc.NewManager(ipc.Options{
		SocketPath:       cfg.SocketPath,
		ReconnectDelay:   cfg.ReconnectDelay,
		MaxAttempts:      cfg.MaxAttempts,
		PlaceholderAfter: cfg.PlaceholderAfter,
		Logger:           logger,
	}, sink)

	runLoop(ctx, mgr, sink, cfg.PollTimeout)

	mgr.Teardown()
	if err := sink.Cleanup(); err != nil {
		logger.Error().Err(err).Msg("display failed")
		return fmt.Errorf("display: %w", err)
	}
	logger.Info().Msg("lyrics client stopped")
	return nil
}

func newSink(cfg config.Config, opts Options, logger *zerolog.Logger) ui.Sink {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Console {
		return ui.NewConsole(out, cfg.MaxDisplayLength)
	}
	return ui.NewOverlay(ui.OverlayOptions{
		Theme:     cfg.Theme,
		MaxLength: cfg.MaxDisplayLength,
		Output:    out,
		Logger:    logger,
	})
}
