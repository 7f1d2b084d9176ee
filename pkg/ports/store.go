package ports

import (
	"context"

	"github.com/aretw0/oncoscreen/pkg/domain"
)

// StateStore keeps the live state of screening sessions.
// Implementations are expected to bound the lifetime of entries; sessions are
// not meant to survive beyond the visit they belong to.
type StateStore interface {
	// Save stores the state for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.State) error

	// Load retrieves the state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.State, error)

	// Delete removes the state for a given session ID.
	// Deleting a missing session is not an error.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all live sessions.
	List(ctx context.Context) ([]string, error)
}
