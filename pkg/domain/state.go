package domain

import "time"

// State represents the current snapshot of a screening session.
type State struct {
	// SessionID identifies the session in stores and transports.
	SessionID string `json:"session_id"`

	// Screen is the selection screen or the active test.
	Screen Screen `json:"screen"`

	// CurrentQuestionID is the question awaiting (or holding) the latest answer.
	// Empty on the selection screen.
	CurrentQuestionID string `json:"current_question_id,omitempty"`

	// History holds the answers of the active test in answer order.
	History History `json:"history"`

	// Recommendation is set once a terminal option has been chosen.
	Recommendation string `json:"recommendation,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// NewState creates a clean state on the selection screen.
func NewState(sessionID string) *State {
	return &State{
		SessionID: sessionID,
		Screen:    ScreenSelection,
		History:   History{},
	}
}

// Terminated reports whether a recommendation has been reached.
func (s *State) Terminated() bool {
	return s.Recommendation != ""
}

// Snapshot returns a deep copy of the state, safe for mutation.
func (s *State) Snapshot() *State {
	if s == nil {
		return nil
	}
	next := *s
	next.History = s.History.Clone()
	return &next
}
