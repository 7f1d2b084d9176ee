package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/domain"
)

// Engine wraps the reducer with logging, timestamps and lifecycle events.
type Engine struct {
	catalogs *catalog.Set
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
	now      func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithClock overrides the time source used for UpdatedAt and events.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine over a catalog set.
func NewEngine(catalogs *catalog.Set, opts ...EngineOption) *Engine {
	e := &Engine{
		catalogs: catalogs,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalogs returns the catalog set the engine serves.
func (e *Engine) Catalogs() *catalog.Set {
	return e.catalogs
}

// Start creates a session on the selection screen.
func (e *Engine) Start(sessionID string) *domain.State {
	s := domain.NewState(sessionID)
	s.UpdatedAt = e.now()
	return s
}

// Dispatch applies an action and emits the matching lifecycle events.
func (e *Engine) Dispatch(ctx context.Context, state *domain.State, action domain.Action) (*domain.State, error) {
	next, err := Transition(e.catalogs, state, action)
	if err != nil {
		e.logger.Debug("action rejected", "session_id", sessionOf(state), "action", action.String(), "err", err)
		return nil, err
	}
	next.UpdatedAt = e.now()

	e.logger.Debug("action applied",
		"session_id", next.SessionID,
		"action", action.String(),
		"screen", string(next.Screen),
		"current_question_id", next.CurrentQuestionID,
		"path_length", len(next.History),
	)
	e.emit(ctx, state, next, action)
	return next, nil
}

func (e *Engine) emit(ctx context.Context, prev, next *domain.State, action domain.Action) {
	event := func(t domain.EventType) *domain.Event {
		return &domain.Event{
			Timestamp:  next.UpdatedAt,
			Type:       t,
			SessionID:  next.SessionID,
			CatalogID:  next.Screen.CatalogID(),
			PathLength: len(next.History),
		}
	}

	switch action.Type {
	case domain.ActionSelectTest:
		e.hooks.Emit(ctx, event(domain.EventTestSelected))
	case domain.ActionAnswer:
		ev := event(domain.EventAnswerRecorded)
		ev.QuestionID, ev.OptionID = action.QuestionID, action.OptionID
		e.hooks.Emit(ctx, ev)

		if next.Terminated() {
			rec := event(domain.EventRecommendation)
			rec.QuestionID, rec.OptionID = action.QuestionID, action.OptionID
			rec.Recommendation = next.Recommendation
			e.logger.Info("recommendation reached",
				"session_id", next.SessionID,
				"catalog_id", rec.CatalogID,
				"path", domain.PathKey(action.QuestionID, action.OptionID),
			)
			e.hooks.Emit(ctx, rec)
		}
	case domain.ActionBack:
		ev := event(domain.EventBack)
		ev.QuestionID = next.CurrentQuestionID
		e.hooks.Emit(ctx, ev)
	case domain.ActionReset:
		e.hooks.Emit(ctx, event(domain.EventReset))
	case domain.ActionExit:
		ev := event(domain.EventExit)
		if prev != nil {
			ev.CatalogID = prev.Screen.CatalogID()
		}
		e.hooks.Emit(ctx, ev)
	}
}

// View derives what a host should render for the state.
func (e *Engine) View(state *domain.State) (*domain.View, error) {
	if state == nil || state.Screen.IsSelection() {
		return &domain.View{
			Screen:   domain.ScreenSelection,
			Catalogs: e.catalogs.Summaries(),
		}, nil
	}

	c, ok := e.catalogs.Get(state.Screen.CatalogID())
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCatalog, state.Screen.CatalogID())
	}

	return &domain.View{
		Screen:         state.Screen,
		CatalogID:      c.ID(),
		Title:          c.Title(),
		Questions:      RenderList(c, state.History, state.CurrentQuestionID),
		Recommendation: state.Recommendation,
		CanGoBack:      len(state.History) > 0,
		CanReset:       true,
	}, nil
}

func sessionOf(s *domain.State) string {
	if s == nil {
		return ""
	}
	return s.SessionID
}
