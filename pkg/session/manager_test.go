package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/oncoscreen/pkg/adapters/memory"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SlowStore simulates latency to provoke race conditions if locking is missing.
type SlowStore struct {
	*memory.Store
}

func (s SlowStore) Save(ctx context.Context, sessionID string, state *domain.State) error {
	time.Sleep(2 * time.Millisecond)
	return s.Store.Save(ctx, sessionID, state)
}

func (s SlowStore) Load(ctx context.Context, sessionID string) (*domain.State, error) {
	time.Sleep(2 * time.Millisecond)
	return s.Store.Load(ctx, sessionID)
}

func TestManager_UpdateSerializesWrites(t *testing.T) {
	store := SlowStore{memory.NewStore()}
	manager := session.NewManager(store)
	ctx := context.Background()
	id := "race-test"

	_, err := manager.LoadOrStart(ctx, id)
	require.NoError(t, err)

	// Each update appends one answer. Without serialization updates are lost.
	var wg sync.WaitGroup
	const writers = 20
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := manager.Update(ctx, id, func(s *domain.State) (*domain.State, error) {
				next := s.Snapshot()
				next.History = append(next.History, domain.Answer{QuestionID: "q", OptionID: "o"})
				return next, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	state, err := manager.Load(ctx, id)
	require.NoError(t, err)
	assert.Len(t, state.History, writers)
}

func TestManager_UpdateKeepsStateOnError(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	ctx := context.Background()

	_, err := manager.LoadOrStart(ctx, "s1")
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = manager.Update(ctx, "s1", func(s *domain.State) (*domain.State, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)

	state, err := manager.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, state.Screen.IsSelection())
}

func TestManager_UpdateMissingSession(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	_, err := manager.Update(context.Background(), "ghost", func(s *domain.State) (*domain.State, error) {
		return s, nil
	})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestManager_LoadOrStart(t *testing.T) {
	store := SlowStore{memory.NewStore()}
	starts := 0
	manager := session.NewManager(store, session.WithStarter(func(id string) *domain.State {
		starts++
		return domain.NewState(id)
	}))
	ctx := context.Background()
	id := "atomic-init"

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			state, err := manager.LoadOrStart(ctx, id)
			assert.NoError(t, err)
			assert.NotNil(t, state)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, starts, "the session must be created once")

	state, err := manager.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, state.SessionID)
	assert.True(t, state.Screen.IsSelection())
}

func TestManager_CreateRejectsExistingID(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	ctx := context.Background()

	first := domain.NewState("dup")
	first.Recommendation = "keep me"
	require.NoError(t, manager.Create(ctx, "dup", first))

	err := manager.Create(ctx, "dup", domain.NewState("dup"))
	assert.ErrorIs(t, err, domain.ErrSessionExists)

	stored, err := manager.Load(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "keep me", stored.Recommendation)
}

func TestManager_DeleteAndList(t *testing.T) {
	manager := session.NewManager(memory.NewStore())
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		_, err := manager.LoadOrStart(ctx, id)
		require.NoError(t, err)
	}
	ids, err := manager.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, manager.Delete(ctx, "a"))
	_, err = manager.Load(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
