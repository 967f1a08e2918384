package ui

import "github.com/five82/lyrics-overlay/internal/ipc"

// Sink is a display surface for lyric and status updates. Display methods
// must return promptly; the event loop calls them between socket reads.
type Sink interface {
	// Initialize prepares the surface. An error is fatal.
	Initialize() error
	DisplayLyrics(text string)
	DisplayStatus(text string)
	// ShouldContinue is polled once per loop iteration; false ends the loop.
	ShouldContinue() bool
	// Cleanup releases the surface. It is called once at shutdown.
	Cleanup() error
}

// EventPumper is implemented by interactive sinks that need their pending UI
// events processed once per loop iteration.
type EventPumper interface {
	PumpEvents()
}

var (
	_ Sink          = (*Console)(nil)
	_ Sink          = (*Overlay)(nil)
	_ EventPumper   = (*Overlay)(nil)
	_ ipc.Presenter = Sink(nil)
)
