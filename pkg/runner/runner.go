package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/ports"
)

// ErrNoEngine is returned by Run when the runner was built without an engine.
var ErrNoEngine = errors.New("runner: no engine configured")

// Runner handles the interaction loop of the engine using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Store is the session store. If nil, sessions are ephemeral.
	Store ports.StateStore

	// SessionID names the session in the Store.
	SessionID string

	engine       ports.Engine
	initialState *domain.State
	state        *domain.State
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the latest state reached by Run.
func (r *Runner) State() *domain.State {
	return r.state.Snapshot()
}

// Run executes the loop until the user quits, input ends or ctx is cancelled.
// Rejected input is reported through the handler and does not stop the loop.
func (r *Runner) Run(ctx context.Context) error {
	if r.engine == nil {
		return ErrNoEngine
	}
	handler := r.resolveHandler()

	state, err := r.resolveInitialState(ctx)
	if err != nil {
		return err
	}
	r.state = state

	render := true
	for {
		view, err := r.engine.View(state)
		if err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if render {
			if err := handler.Output(ctx, view); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}

		line, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				r.Logger.Debug("runner stopped", "session_id", state.SessionID, "reason", err)
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		action, err := ParseInput(view, line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			render = false
			if err := handler.SystemOutput(ctx, err.Error()); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		}

		next, err := r.engine.Dispatch(ctx, state, action)
		if err != nil {
			render = false
			r.Logger.Debug("runner action rejected", "session_id", state.SessionID, "action", action.String(), "err", err)
			if err := handler.SystemOutput(ctx, err.Error()); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		}

		if err := r.saveState(ctx, next); err != nil {
			return fmt.Errorf("critical persistence error: %w", err)
		}
		state = next
		r.state = next
		render = true
	}
}

func (r *Runner) saveState(ctx context.Context, state *domain.State) error {
	if r.Store == nil || r.SessionID == "" {
		return nil
	}
	if err := r.Store.Save(ctx, r.SessionID, state); err != nil {
		return err
	}
	r.Logger.Debug("state saved", "session_id", r.SessionID, "question_id", state.CurrentQuestionID)
	return nil
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}

// resolveInitialState prefers an explicit state, then a stored session, then a new one.
func (r *Runner) resolveInitialState(ctx context.Context) (*domain.State, error) {
	if r.initialState != nil {
		return r.initialState.Snapshot(), nil
	}

	if r.Store != nil && r.SessionID != "" {
		state, err := r.Store.Load(ctx, r.SessionID)
		if err == nil {
			r.Logger.Debug("session resumed", "session_id", r.SessionID)
			return state, nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return nil, fmt.Errorf("failed to load session %s: %w", r.SessionID, err)
		}
	}

	state := r.engine.Start(r.SessionID)
	if err := r.saveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to initialize session %s: %w", r.SessionID, err)
	}
	return state, nil
}
