package oncoscreen_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/oncoscreen"
	"github.com/aretw0/oncoscreen/pkg/adapters/memory"
	"github.com/aretw0/oncoscreen/pkg/catalog"
	"github.com/aretw0/oncoscreen/pkg/catalog/builtin"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Builtin(t *testing.T) {
	eng, err := oncoscreen.New()
	require.NoError(t, err)

	assert.Equal(t, 2, eng.Catalogs().Len())
	c, ok := eng.Catalog(builtin.Breast)
	require.True(t, ok)
	assert.Equal(t, "b1", c.First())
	assert.NotNil(t, eng.Loader())
}

func TestNew_LoaderErrorsSurface(t *testing.T) {
	_, err := oncoscreen.New(oncoscreen.WithLoader(memory.NewLoader(catalog.Definition{ID: "broken"})))
	require.Error(t, err)
	assert.NotEmpty(t, catalog.ValidationErrors(err))
}

func TestNew_Directory(t *testing.T) {
	dir := t.TempDir()
	doc := `id: dir
title: From disk
questions:
  - id: q1
    text: Ready?
    options:
      - id: go
        label: Go
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dir.yaml"), []byte(doc), 0o644))

	eng, err := oncoscreen.New(oncoscreen.WithDirectory(dir))
	require.NoError(t, err)
	_, ok := eng.Catalog("dir")
	assert.True(t, ok)
}

func TestEngine_HooksAndSwitching(t *testing.T) {
	var events []domain.EventType
	record := func(_ context.Context, e *domain.Event) { events = append(events, e.Type) }

	eng, err := oncoscreen.New(
		oncoscreen.WithLifecycleHooks(domain.LifecycleHooks{OnTestSelected: record}),
		oncoscreen.WithLifecycleHooks(domain.LifecycleHooks{OnRecommendation: record}),
	)
	require.NoError(t, err)

	ctx := context.Background()
	state, err := eng.Dispatch(ctx, eng.Start("s"), domain.SelectTest(builtin.Cervical))
	require.NoError(t, err)
	state, err = eng.Dispatch(ctx, state, domain.AnswerWith("q1", "under21"))
	require.NoError(t, err)
	require.True(t, state.Terminated())

	// Switching tests drops the finished path.
	state, err = eng.Dispatch(ctx, state, domain.SelectTest(builtin.Breast))
	require.NoError(t, err)
	assert.Empty(t, state.History)
	assert.Equal(t, "b1", state.CurrentQuestionID)
	assert.Empty(t, state.Recommendation)

	assert.Equal(t, []domain.EventType{
		domain.EventTestSelected,
		domain.EventRecommendation,
		domain.EventTestSelected,
	}, events)
}
