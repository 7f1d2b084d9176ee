package ports

import (
	"context"

	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/domain"
)

// Engine is the questionnaire core as seen by the hosts (HTTP, MCP, terminal).
// It keeps no per-session state: hosts hold the State and feed it back.
type Engine interface {
	// Start creates a fresh session on the selection screen.
	Start(sessionID string) *domain.State

	// Dispatch applies an action and returns the new state.
	// The given state is left untouched.
	Dispatch(ctx context.Context, state *domain.State, action domain.Action) (*domain.State, error)

	// View derives what should be rendered for the state.
	View(state *domain.State) (*domain.View, error)

	// Catalogs returns the loaded catalogs.
	Catalogs() *catalog.Set
}
