package app

import (
	"context"
	"errors"
	"time"

	"github.com/five82/lyrics-overlay/internal/ipc"
	"github.com/five82/lyrics-overlay/internal/ui"
)

const defaultPollTimeout = 100 * time.Millisecond

// runLoop drives the manager on the calling goroutine. While connected the
// read deadline is the only wait; while disconnected the loop sleeps until
// the next attempt is due, never longer than pollTimeout so UI events keep
// flowing.
func runLoop(ctx context.Context, mgr *ipc.Manager, sink ui.Sink, pollTimeout time.Duration) {
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}
	pump, _ := sink.(ui.EventPumper)

	for {
		if ctx.Err() != nil {
			return
		}
		if pump != nil {
			pump.PumpEvents()
		}
		if !sink.ShouldContinue() {
			return
		}

		if !mgr.Connected() {
			if err := mgr.Reconnect(ctx); errors.Is(err, ipc.ErrAttemptsExhausted) {
				sink.DisplayStatus("Maximum reconnection attempts reached. Exiting.")
				return
			}
		}

		if mgr.Connected() {
			mgr.ReadUpdate(pollTimeout)
			continue
		}

		if !pause(ctx, min(pollTimeout, mgr.UntilNextAttempt())) {
			return
		}
	}
}

// pause sleeps for d and reports false if ctx ended first.
func pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
