package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/oncoscreen/internal/runtime"
	"github.com/aretw0/oncoscreen/pkg/adapters/memory"
	"github.com/aretw0/oncoscreen/pkg/catalog/builtin"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	engine := runtime.NewEngine(builtin.MustLoad())
	return NewServer(engine, session.NewManager(memory.NewStore()),
		WithIDGenerator(func() string { return "mcp-1" }),
	)
}

func TestListTests(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleListTests(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var summaries []domain.CatalogSummary
	require.NoError(t, json.Unmarshal([]byte(text.Text), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, builtin.Cervical, summaries[0].ID)
}

func TestSessionTools(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	started, err := s.handleStartSession(ctx, mcp.CallToolRequest{}, StartArgs{CatalogID: builtin.Breast})
	require.NoError(t, err)
	assert.Equal(t, "mcp-1", started.State.SessionID)
	pending, ok := started.View.Pending()
	require.True(t, ok)
	assert.Equal(t, "b1", pending.ID)

	resp, err := s.handleDispatch(ctx, mcp.CallToolRequest{}, DispatchArgs{
		SessionID:  "mcp-1",
		Type:       "answer",
		QuestionID: "b1",
		OptionID:   "75plus",
	})
	require.NoError(t, err)
	assert.True(t, resp.View.Terminal())

	view, err := s.handleGetView(ctx, mcp.CallToolRequest{}, ViewArgs{SessionID: "mcp-1"})
	require.NoError(t, err)
	assert.Equal(t, resp.State.Recommendation, view.View.Recommendation)

	_, err = s.handleDispatch(ctx, mcp.CallToolRequest{}, DispatchArgs{
		SessionID:  "mcp-1",
		Type:       "answer",
		QuestionID: "b1",
		OptionID:   "under40",
	})
	assert.ErrorIs(t, err, domain.ErrQuestionLocked)

	resp, err = s.handleDispatch(ctx, mcp.CallToolRequest{}, DispatchArgs{SessionID: "mcp-1", Type: "exit"})
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenSelection, resp.View.Screen)
}

func TestStartSession_RejectsExistingID(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleStartSession(ctx, mcp.CallToolRequest{}, StartArgs{SessionID: "shared", CatalogID: builtin.Breast})
	require.NoError(t, err)
	_, err = s.handleDispatch(ctx, mcp.CallToolRequest{}, DispatchArgs{
		SessionID:  "shared",
		Type:       "answer",
		QuestionID: "b1",
		OptionID:   "75plus",
	})
	require.NoError(t, err)

	_, err = s.handleStartSession(ctx, mcp.CallToolRequest{}, StartArgs{SessionID: "shared"})
	assert.ErrorIs(t, err, domain.ErrSessionExists)

	view, err := s.handleGetView(ctx, mcp.CallToolRequest{}, ViewArgs{SessionID: "shared"})
	require.NoError(t, err)
	assert.True(t, view.View.Terminal())
	assert.Len(t, view.State.History, 1)
}

func TestDispatch_RejectsBadArguments(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleStartSession(ctx, mcp.CallToolRequest{}, StartArgs{SessionID: "explicit"})
	require.NoError(t, err)

	_, err = s.handleDispatch(ctx, mcp.CallToolRequest{}, DispatchArgs{Type: "back"})
	assert.Error(t, err)

	_, err = s.handleDispatch(ctx, mcp.CallToolRequest{}, DispatchArgs{SessionID: "explicit", Type: "teleport"})
	assert.ErrorIs(t, err, domain.ErrUnknownAction)

	_, err = s.handleDispatch(ctx, mcp.CallToolRequest{}, DispatchArgs{SessionID: "ghost", Type: "back"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = s.handleStartSession(ctx, mcp.CallToolRequest{}, StartArgs{CatalogID: "lung"})
	assert.ErrorIs(t, err, domain.ErrUnknownCatalog)
}

func TestCatalogsResource(t *testing.T) {
	s := newTestServer(t)

	contents, err := s.handleCatalogsResource(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, CatalogsURI, text.URI)

	var catalogs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &catalogs))
	require.Len(t, catalogs, 2)
	assert.Equal(t, builtin.Cervical, catalogs[0]["id"])
	assert.Contains(t, catalogs[1], "recommendations")
}
