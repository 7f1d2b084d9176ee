package runner

import (
	"context"

	"github.com/aretw0/oncoscreen/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the view to the user.
	Output(ctx context.Context, view *domain.View) error

	// Input reads one sanitized line from the user.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (e.g. a rejected command).
	// This is distinct from view rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms Markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
