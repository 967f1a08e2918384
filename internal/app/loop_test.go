package app

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/lyrics-overlay/internal/ipc"
	"github.com/five82/lyrics-overlay/internal/lyrics"
)

// fakeSink records what the loop shows. stopOn ends the loop once that lyric
// has been displayed.
type fakeSink struct {
	lyrics   []string
	statuses []string
	cont     bool
	pumps    int
	stopOn   string

	cleanupErr error
}

func newFakeSink() *fakeSink { return &fakeSink{cont: true} }

func (s *fakeSink) Initialize() error { return nil }
func (s *fakeSink) Cleanup() error    { return s.cleanupErr }
func (s *fakeSink) PumpEvents()       { s.pumps++ }

func (s *fakeSink) DisplayLyrics(text string) {
	s.lyrics = append(s.lyrics, text)
	if s.stopOn != "" && text == s.stopOn {
		s.cont = false
	}
}

func (s *fakeSink) DisplayStatus(text string) { s.statuses = append(s.statuses, text) }
func (s *fakeSink) ShouldContinue() bool      { return s.cont }

func (s *fakeSink) count(status string) int {
	n := 0
	for _, st := range s.statuses {
		if st == status {
			n++
		}
	}
	return n
}

type failingDialer struct{ calls int }

func (d *failingDialer) DialContext(context.Context, string, string) (net.Conn, error) {
	d.calls++
	return nil, errors.New("connection refused")
}

func socketPath(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "lyr")
	if err != nil {
		t.Fatalf("mkdir temp: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return filepath.Join(dir, "s.sock")
}

func TestRunLoop_ReconnectsAfterBackendCloses(t *testing.T) {
	path := socketPath(t)
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	second := make(chan net.Conn, 1)
	go func() {
		first, err := ln.Accept()
		if err != nil {
			return
		}
		_, _ = first.Write([]byte("line one\n"))
		_ = first.Close()

		conn, err := ln.Accept()
		if err != nil {
			return
		}
		_, _ = conn.Write([]byte("line two\r\n"))
		second <- conn
	}()

	sink := newFakeSink()
	sink.stopOn = "line two"
	mgr := ipc.NewManager(ipc.Options{SocketPath: path, ReconnectDelay: 50 * time.Millisecond}, sink)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	runLoop(ctx, mgr, sink, 20*time.Millisecond)
	mgr.Teardown()

	select {
	case conn := <-second:
		_ = conn.Close()
	default:
	}

	if ctx.Err() != nil {
		t.Fatalf("loop did not see the second lyric before the deadline; lyrics=%q statuses=%q", sink.lyrics, sink.statuses)
	}
	want := []string{"line one", "line two"}
	if strings.Join(sink.lyrics, "|") != strings.Join(want, "|") {
		t.Fatalf("lyrics = %q, want %q", sink.lyrics, want)
	}
	if got := sink.count("Backend connection closed. Will attempt to reconnect..."); got != 1 {
		t.Errorf("closed status shown %d times, want 1; statuses=%q", got, sink.statuses)
	}
	if got := sink.count("Connected to backend."); got != 2 {
		t.Errorf("connected status shown %d times, want 2; statuses=%q", got, sink.statuses)
	}
	if sink.pumps == 0 {
		t.Error("PumpEvents was never called")
	}
}

func TestRunLoop_StopsWhenAttemptsExhausted(t *testing.T) {
	sink := newFakeSink()
	dialer := &failingDialer{}
	mgr := ipc.NewManager(ipc.Options{
		ReconnectDelay:   5 * time.Millisecond,
		MaxAttempts:      3,
		PlaceholderAfter: 3,
		Dialer:           dialer,
	}, sink)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	runLoop(ctx, mgr, sink, 20*time.Millisecond)

	if ctx.Err() != nil {
		t.Fatal("loop did not stop on its own")
	}
	if dialer.calls != 3 {
		t.Fatalf("dial calls = %d, want 3", dialer.calls)
	}
	if last := sink.statuses[len(sink.statuses)-1]; last != "Maximum reconnection attempts reached. Exiting." {
		t.Fatalf("last status = %q, want the exhausted message", last)
	}
	if len(sink.lyrics) != 1 || sink.lyrics[0] != lyrics.Disconnected {
		t.Fatalf("lyrics = %q, want only the disconnected placeholder", sink.lyrics)
	}
}

func TestRunLoop_CapExitWaitsForDelay(t *testing.T) {
	sink := newFakeSink()
	dialer := &failingDialer{}
	delay := 80 * time.Millisecond
	mgr := ipc.NewManager(ipc.Options{ReconnectDelay: delay, MaxAttempts: 1, Dialer: dialer}, sink)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	start := time.Now()
	runLoop(ctx, mgr, sink, 10*time.Millisecond)

	if elapsed := time.Since(start); elapsed < delay {
		t.Fatalf("loop exited after %v, want at least the %v reconnect delay", elapsed, delay)
	}
	if got := sink.count("Maximum reconnection attempts reached. Exiting."); got != 1 {
		t.Fatalf("exhausted status shown %d times, want 1; statuses=%q", got, sink.statuses)
	}
}

func TestRunLoop_WaitsBetweenAttempts(t *testing.T) {
	sink := newFakeSink()
	dialer := &failingDialer{}
	mgr := ipc.NewManager(ipc.Options{ReconnectDelay: time.Hour, Dialer: dialer}, sink)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	runLoop(ctx, mgr, sink, 10*time.Millisecond)

	if dialer.calls != 1 {
		t.Fatalf("dial calls = %d, want 1 within the reconnect delay", dialer.calls)
	}
	if sink.pumps < 2 {
		t.Fatalf("pumps = %d, want the loop to keep pumping events while waiting", sink.pumps)
	}
}

func TestRunLoop_StopsWhenSinkCloses(t *testing.T) {
	sink := newFakeSink()
	sink.cont = false
	dialer := &failingDialer{}
	mgr := ipc.NewManager(ipc.Options{Dialer: dialer}, sink)

	runLoop(context.Background(), mgr, sink, 0)

	if dialer.calls != 0 {
		t.Fatalf("dial calls = %d, want 0", dialer.calls)
	}
	if sink.pumps != 1 {
		t.Fatalf("pumps = %d, want 1", sink.pumps)
	}
}

func TestRunLoop_StopsOnCancelledContext(t *testing.T) {
	sink := newFakeSink()
	dialer := &failingDialer{}
	mgr := ipc.NewManager(ipc.Options{Dialer: dialer}, sink)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runLoop(ctx, mgr, sink, 0)

	if dialer.calls != 0 || sink.pumps != 0 {
		t.Fatalf("dial calls = %d, pumps = %d, want no work after cancel", dialer.calls, sink.pumps)
	}
}

func TestPause(t *testing.T) {
	if !pause(context.Background(), 0) {
		t.Error("pause(0) = false, want true")
	}
	if !pause(context.Background(), time.Millisecond) {
		t.Error("pause(1ms) = false, want true")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if pause(ctx, time.Hour) {
		t.Error("pause on cancelled ctx = true, want false")
	}
}
