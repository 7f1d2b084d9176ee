package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/oncoscreen"
	"github.com/aretw0/oncoscreen/internal/presentation/tui"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/runner"
)

// RunOptions configures an interactive session.
type RunOptions struct {
	// SessionID keeps the session in the configured store when set.
	SessionID string
	// JSON switches to NDJSON input/output.
	JSON bool
	// Quiet suppresses the banner and system messages.
	Quiet bool
}

// RunSession runs the questionnaire on the given streams until the user quits.
func RunSession(ctx context.Context, app *App, opts RunOptions, in io.Reader, out io.Writer) error {
	mode := runner.ModeText
	if opts.JSON {
		mode = runner.ModeJSON
	}
	quiet := opts.Quiet || opts.JSON
	tty := IsTerminal(out)

	var renderer runner.ContentRenderer
	if mode == runner.ModeText && tty {
		renderer = tui.NewRenderer(terminalWidth(out))
	}
	if !quiet && tty {
		tui.PrintBanner(out, oncoscreen.Version)
	}

	handler, err := runner.NewHandler(mode, in, out, renderer, app.Config.MaxInputSize)
	if err != nil {
		return err
	}

	runnerOpts := []runner.Option{
		runner.WithEngine(app.Engine),
		runner.WithLogger(app.Logger),
		runner.WithInputHandler(handler),
	}
	if opts.SessionID != "" {
		runnerOpts = append(runnerOpts,
			runner.WithSessionID(opts.SessionID),
			runner.WithStore(app.Stores.State),
		)
		if !quiet {
			logSessionStatus(ctx, app, opts.SessionID, out)
		}
	}

	r := runner.NewRunner(runnerOpts...)
	if err := r.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	if !quiet {
		if final := r.State(); final != nil && final.Terminated() {
			printSystemMessage(out, "Finished %s with a recommendation.", final.Screen.CatalogID())
		}
	}
	return nil
}

func logSessionStatus(ctx context.Context, app *App, sessionID string, out io.Writer) {
	state, err := app.Stores.State.Load(ctx, sessionID)
	switch {
	case err == nil:
		app.Logger.Info("session resumed", "session_id", sessionID)
		if id := state.Screen.CatalogID(); id != "" {
			printSystemMessage(out, "Resuming %s at question '%s'.", id, state.CurrentQuestionID)
			return
		}
		printSystemMessage(out, "Resuming session '%s'.", sessionID)
	case errors.Is(err, domain.ErrSessionNotFound):
		app.Logger.Info("session created", "session_id", sessionID)
		printSystemMessage(out, "Session '%s' active.", sessionID)
	default:
		app.Logger.Warn("session lookup failed", "session_id", sessionID, "err", err)
	}
}
