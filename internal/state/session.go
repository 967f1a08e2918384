package state

import (
	"net"
	"time"

	"github.com/five82/lyrics-overlay/internal/lyrics"
)

// Snapshot is a read-only copy of a Session.
type Snapshot struct {
	Connected   bool
	HandleOpen  bool
	Lyrics      string
	Attempts    int
	LastAttempt time.Time
}

// Session is the connection manager's live state. The zero value is not
// ready for use; call NewSession.
//
// Session is not safe for concurrent use. It is owned by the single event
// loop goroutine.
type Session struct {
	conn        net.Conn
	connected   bool
	lyrics      string
	attempts    int
	lastAttempt time.Time
}

// NewSession returns a disconnected session showing the waiting text.
func NewSession() *Session {
	return &Session{lyrics: lyrics.Waiting}
}

// Conn returns the open socket handle, or nil.
func (s *Session) Conn() net.Conn {
	return s.conn
}

// Connected reports whether the session holds a live connection.
func (s *Session) Connected() bool {
	return s.connected
}

// Attach stores a freshly connected handle and resets the attempt counter.
// Any previous handle must have been released with Release first.
func (s *Session) Attach(conn net.Conn) {
	s.conn = conn
	s.connected = true
	s.attempts = 0
}

// Release closes the handle if one is open and marks the session
// disconnected. Calling it on a released session is a no-op.
func (s *Session) Release() error {
	var err error
	if s.conn != nil {
		err = s.conn.Close()
		s.conn = nil
	}
	s.connected = false
	return err
}

// RecordAttempt counts a connection attempt made at now and returns the new
// attempt number.
func (s *Session) RecordAttempt(now time.Time) int {
	s.attempts++
	s.lastAttempt = now
	return s.attempts
}

// Attempts returns the number of attempts since the last successful connect.
func (s *Session) Attempts() int {
	return s.attempts
}

// LastAttempt returns when the previous attempt was made. The zero time
// means the next attempt may fire immediately.
func (s *Session) LastAttempt() time.Time {
	return s.lastAttempt
}

// ResetTiming forgets the last attempt time so the next attempt is not
// delayed.
func (s *Session) ResetTiming() {
	s.lastAttempt = time.Time{}
}

// Lyrics returns the last displayed lyric text.
func (s *Session) Lyrics() string {
	return s.lyrics
}

// SetLyrics stores text and reports whether it differs from the previous
// value.
func (s *Session) SetLyrics(text string) bool {
	if text == s.lyrics {
		return false
	}
	s.lyrics = text
	return true
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Connected:   s.connected,
		HandleOpen:  s.conn != nil,
		Lyrics:      s.lyrics,
		Attempts:    s.attempts,
		LastAttempt: s.lastAttempt,
	}
}
