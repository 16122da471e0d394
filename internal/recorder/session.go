// Package recorder implements the lifecycle of a single recording session:
// start, pause, resume, stop, discard. Capture and encoding belong to the
// device layer; this package owns the state machine and the elapsed clock.
package recorder

import (
	"errors"
	"time"
)

// State is the recording session state.
type State int

// Session states.
const (
	StateIdle State = iota
	StateRecording
	StatePaused
	StateStopped
	StateDiscarded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	case StateDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Session state errors.
var (
	ErrAlreadyStarted = errors.New("recording already started")
	ErrNotRecording   = errors.New("not recording")
	ErrNotPaused      = errors.New("not paused")
	ErrFinished       = errors.New("recording session finished")
)

// FinalizeFunc receives the session's elapsed duration when a recording stops
// normally. A discarded session never invokes it.
type FinalizeFunc func(elapsed time.Duration)

// Session is a single recording session. It is not safe for concurrent use;
// the UI event loop is its only caller.
type Session struct {
	now         func() time.Time
	finalize    FinalizeFunc
	startedAt   time.Time
	accumulated time.Duration
	state       State
}

// NewSession creates an idle session. finalize may be nil.
func NewSession(finalize FinalizeFunc) *Session {
	return &Session{
		state:    StateIdle,
		finalize: finalize,
		now:      time.Now,
	}
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Elapsed returns recorded time so far, excluding paused intervals. The
// clock only advances while recording, so pausing freezes it and resuming
// continues without double-counting.
func (s *Session) Elapsed() time.Duration {
	if s.state == StateRecording {
		return s.accumulated + s.now().Sub(s.startedAt)
	}
	return s.accumulated
}

// Start begins recording from an idle session.
func (s *Session) Start() error {
	if s.state != StateIdle {
		if s.state == StateStopped || s.state == StateDiscarded {
			return ErrFinished
		}
		return ErrAlreadyStarted
	}

	s.startedAt = s.now()
	s.state = StateRecording
	return nil
}

// Pause halts the elapsed clock.
func (s *Session) Pause() error {
	if s.state != StateRecording {
		return ErrNotRecording
	}

	s.accumulated += s.now().Sub(s.startedAt)
	s.state = StatePaused
	return nil
}

// Resume restarts the elapsed clock after a pause.
func (s *Session) Resume() error {
	if s.state != StatePaused {
		return ErrNotPaused
	}

	s.startedAt = s.now()
	s.state = StateRecording
	return nil
}

// Stop finalizes the session and delivers the recording via the finalize
// callback.
func (s *Session) Stop() error {
	switch s.state {
	case StateRecording:
		s.accumulated += s.now().Sub(s.startedAt)
	case StatePaused:
		// Clock already frozen.
	default:
		return ErrNotRecording
	}

	s.state = StateStopped
	if s.finalize != nil {
		s.finalize(s.accumulated)
	}
	return nil
}

// Discard abandons the session. The finalize callback is suppressed: the
// recorded data must never reach the caller.
func (s *Session) Discard() error {
	switch s.state {
	case StateRecording:
		s.accumulated += s.now().Sub(s.startedAt)
	case StatePaused:
	default:
		return ErrNotRecording
	}

	s.state = StateDiscarded
	return nil
}
