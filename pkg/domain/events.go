package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTestSelected   EventType = "test_selected"
	EventAnswerRecorded EventType = "answer_recorded"
	EventRecommendation EventType = "recommendation"
	EventBack           EventType = "back"
	EventReset          EventType = "reset"
	EventExit           EventType = "exit"
)

// Event describes a completed transition.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	Type       EventType `json:"type"`
	SessionID  string    `json:"session_id"`
	CatalogID  string    `json:"catalog_id,omitempty"`
	QuestionID string    `json:"question_id,omitempty"`
	OptionID   string    `json:"option_id,omitempty"`

	// PathLength is the number of answers in the history after the transition.
	PathLength int `json:"path_length"`

	// Recommendation is set for EventRecommendation.
	Recommendation string `json:"recommendation,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTestSelected   func(context.Context, *Event)
	OnAnswer         func(context.Context, *Event)
	OnRecommendation func(context.Context, *Event)
	OnBack           func(context.Context, *Event)
	OnReset          func(context.Context, *Event)
	OnExit           func(context.Context, *Event)
}

// Emit routes the event to the matching hook.
func (h LifecycleHooks) Emit(ctx context.Context, e *Event) {
	var fn func(context.Context, *Event)
	switch e.Type {
	case EventTestSelected:
		fn = h.OnTestSelected
	case EventAnswerRecorded:
		fn = h.OnAnswer
	case EventRecommendation:
		fn = h.OnRecommendation
	case EventBack:
		fn = h.OnBack
	case EventReset:
		fn = h.OnReset
	case EventExit:
		fn = h.OnExit
	}
	if fn != nil {
		fn(ctx, e)
	}
}

// Merge combines hooks so that both run, h first.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	chain := func(a, b func(context.Context, *Event)) func(context.Context, *Event) {
		if a == nil {
			return b
		}
		if b == nil {
			return a
		}
		return func(ctx context.Context, e *Event) {
			a(ctx, e)
			b(ctx, e)
		}
	}
	return LifecycleHooks{
		OnTestSelected:   chain(h.OnTestSelected, other.OnTestSelected),
		OnAnswer:         chain(h.OnAnswer, other.OnAnswer),
		OnRecommendation: chain(h.OnRecommendation, other.OnRecommendation),
		OnBack:           chain(h.OnBack, other.OnBack),
		OnReset:          chain(h.OnReset, other.OnReset),
		OnExit:           chain(h.OnExit, other.OnExit),
	}
}
