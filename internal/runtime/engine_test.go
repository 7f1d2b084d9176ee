package runtime_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/oncoscreen/internal/runtime"
	"github.com/aretw0/oncoscreen/pkg/catalog/builtin"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_ViewSelection(t *testing.T) {
	engine := runtime.NewEngine(builtin.MustLoad())
	s := engine.Start("s1")

	view, err := engine.View(s)
	require.NoError(t, err)
	assert.True(t, view.Screen.IsSelection())
	require.Len(t, view.Catalogs, 2)
	assert.Equal(t, builtin.Cervical, view.Catalogs[0].ID)
	assert.False(t, view.CanGoBack)
	assert.False(t, view.CanReset)
	assert.Empty(t, view.Questions)
}

func TestEngine_ViewTest(t *testing.T) {
	ctx := context.Background()
	engine := runtime.NewEngine(builtin.MustLoad())

	s, err := engine.Dispatch(ctx, engine.Start("s1"), domain.SelectTest(builtin.Breast))
	require.NoError(t, err)

	view, err := engine.View(s)
	require.NoError(t, err)
	assert.Equal(t, "Breast cancer screening", view.Title)
	assert.False(t, view.CanGoBack)
	assert.True(t, view.CanReset)

	pending, ok := view.Pending()
	require.True(t, ok)
	assert.Equal(t, "b1", pending.ID)

	s, err = engine.Dispatch(ctx, s, domain.AnswerWith("b1", "75plus"))
	require.NoError(t, err)

	view, err = engine.View(s)
	require.NoError(t, err)
	assert.True(t, view.CanGoBack)
	assert.True(t, view.Terminal())
	assert.Equal(t, "75plus", view.Questions[0].SelectedOptionID)
	_, ok = view.Pending()
	assert.False(t, ok)
}

func TestEngine_ViewUnknownCatalog(t *testing.T) {
	engine := runtime.NewEngine(builtin.MustLoad())
	s := engine.Start("s1")
	s.Screen = domain.TestScreen("lung")

	_, err := engine.View(s)
	assert.ErrorIs(t, err, domain.ErrUnknownCatalog)
}

func TestEngine_LifecycleHooks(t *testing.T) {
	ctx := context.Background()
	var events []domain.EventType
	var last *domain.Event
	record := func(_ context.Context, e *domain.Event) {
		events = append(events, e.Type)
		last = e
	}
	hooks := domain.LifecycleHooks{
		OnTestSelected:   record,
		OnAnswer:         record,
		OnRecommendation: record,
		OnBack:           record,
		OnReset:          record,
		OnExit:           record,
	}

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	engine := runtime.NewEngine(builtin.MustLoad(),
		runtime.WithLifecycleHooks(hooks),
		runtime.WithClock(func() time.Time { return fixed }),
	)

	s := engine.Start("s1")
	for _, a := range []domain.Action{
		domain.SelectTest(builtin.Cervical),
		domain.AnswerWith("q1", "21to29"),
		domain.AnswerWith("q2", "no"),
	} {
		var err error
		s, err = engine.Dispatch(ctx, s, a)
		require.NoError(t, err)
	}

	require.NotNil(t, last)
	assert.Equal(t, domain.EventRecommendation, last.Type)
	assert.Equal(t, "q2", last.QuestionID)
	assert.Equal(t, 2, last.PathLength)
	assert.Equal(t, fixed, last.Timestamp)
	assert.Equal(t, fixed, s.UpdatedAt)

	s, err := engine.Dispatch(ctx, s, domain.Back())
	require.NoError(t, err)
	assert.Equal(t, "q2", last.QuestionID)

	s, err = engine.Dispatch(ctx, s, domain.Reset())
	require.NoError(t, err)
	_, err = engine.Dispatch(ctx, s, domain.Exit())
	require.NoError(t, err)
	assert.Equal(t, builtin.Cervical, last.CatalogID, "exit reports the test that was left")

	assert.Equal(t, []domain.EventType{
		domain.EventTestSelected,
		domain.EventAnswerRecorded,
		domain.EventAnswerRecorded,
		domain.EventRecommendation,
		domain.EventBack,
		domain.EventReset,
		domain.EventExit,
	}, events)
}

func TestEngine_RejectedActionEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	called := false
	engine := runtime.NewEngine(builtin.MustLoad(),
		runtime.WithLogger(logger),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnBack: func(context.Context, *domain.Event) { called = true },
		}),
	)

	_, err := engine.Dispatch(context.Background(), engine.Start("s1"), domain.Back())
	assert.ErrorIs(t, err, domain.ErrNoActiveTest)
	assert.False(t, called)
	assert.Contains(t, buf.String(), "action rejected")
	assert.Contains(t, buf.String(), "session_id=s1")
}
