package model

import (
	"time"
)

// Outcome is how an interactive crop session ended.
type Outcome int

const (
	OutcomeNone  Outcome = iota // session still running
	OutcomeSaved                // crop committed and written
	OutcomeQuit                 // user quit without saving
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}

// SessionModel tracks the lifecycle of one interactive crop session.
// It is decoupled from the UI; the presenter records the outcome and the
// app reads it after the window closes to pick the exit code.
// The zero value is ready to use.
type SessionModel struct {
	startedAt time.Time
	outcome   Outcome
	savedPath string
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// Begin stamps the session start. Later calls are ignored.
func (m *SessionModel) Begin(now time.Time) {
	if m == nil || !m.startedAt.IsZero() {
		return
	}
	m.startedAt = now
}

// MarkSaved records a successful commit. The first recorded outcome wins.
func (m *SessionModel) MarkSaved(path string) {
	if m == nil || m.outcome != OutcomeNone {
		return
	}
	m.outcome = OutcomeSaved
	m.savedPath = path
}

// MarkQuit records a user-initiated quit. The first recorded outcome wins.
func (m *SessionModel) MarkQuit() {
	if m == nil || m.outcome != OutcomeNone {
		return
	}
	m.outcome = OutcomeQuit
}

// Outcome reports how the session ended, OutcomeNone while running.
func (m *SessionModel) Outcome() Outcome {
	if m == nil {
		return OutcomeNone
	}
	return m.outcome
}

// SavedPath returns the written crop path for a saved session.
func (m *SessionModel) SavedPath() string {
	if m == nil {
		return ""
	}
	return m.savedPath
}

// Duration reports how long the session has been running.
func (m *SessionModel) Duration(now time.Time) time.Duration {
	if m == nil || m.startedAt.IsZero() {
		return 0
	}
	return now.Sub(m.startedAt)
}
