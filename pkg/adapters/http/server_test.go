package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/oncoscreen/internal/runtime"
	httpadapter "github.com/aretw0/oncoscreen/pkg/adapters/http"
	"github.com/aretw0/oncoscreen/pkg/adapters/memory"
	"github.com/aretw0/oncoscreen/pkg/catalog/builtin"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type sessionResponse struct {
	State domain.State `json:"state"`
	View  domain.View  `json:"view"`
}

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	engine := runtime.NewEngine(builtin.MustLoad())
	sessions := session.NewManager(memory.NewStore())

	n := 0
	return httpadapter.NewHandler(engine, sessions,
		httpadapter.WithIDGenerator(func() string {
			n++
			return "sess-" + string(rune('0'+n))
		}),
		httpadapter.WithMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		})),
	)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) sessionResponse {
	t.Helper()
	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httpadapter.Error {
	t.Helper()
	var resp httpadapter.Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestServer_Meta(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "oncoscreen-http", info["app"])
	assert.Equal(t, "1.0.0", info["api_version"])

	w = do(t, h, http.MethodGet, "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/yaml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"openapi":"3.0.3"`)
	assert.Contains(t, w.Body.String(), `"operationId":"dispatchAction"`)

	w = do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# metrics", w.Body.String())
}

func TestLoadSpec(t *testing.T) {
	doc, err := httpadapter.LoadSpec(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", doc.Info.Version)
	for _, path := range []string{
		"/health",
		"/catalogs",
		"/catalogs/{catalogID}/graph",
		"/sessions",
		"/sessions/{sessionID}/actions",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestHandlerFromMux_ServesGeneratedRoutes(t *testing.T) {
	engine := runtime.NewEngine(builtin.MustLoad())
	server := httpadapter.NewServer(engine, session.NewManager(memory.NewStore()))
	h := httpadapter.HandlerFromMux(server, chi.NewRouter())

	w := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/catalogs/breast", "")
	require.Equal(t, http.StatusOK, w.Code)
	var c httpadapter.Catalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Equal(t, builtin.Breast, c.Id)
	assert.NotEmpty(t, c.Questions)

	w = do(t, h, http.MethodPost, "/sessions/missing/actions", `{"type":"back"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_Catalogs(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodGet, "/catalogs", "")
	require.Equal(t, http.StatusOK, w.Code)
	var summaries []domain.CatalogSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, builtin.Cervical, summaries[0].ID)
	assert.Equal(t, builtin.Breast, summaries[1].ID)

	w = do(t, h, http.MethodGet, "/catalogs/cervical", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"q1"`)

	w = do(t, h, http.MethodGet, "/catalogs/cervical/graph", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph TD"))

	w = do(t, h, http.MethodGet, "/catalogs/lung", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "unknown_catalog", decodeError(t, w).Code)

	w = do(t, h, http.MethodGet, "/catalogs/lung/graph", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_SessionFlow(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/sessions", `{"catalog_id":"cervical"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeSession(t, w)
	id := created.State.SessionID
	assert.Equal(t, "sess-1", id)
	require.Len(t, created.View.Questions, 1)
	assert.Equal(t, "q1", created.View.Questions[0].ID)
	assert.False(t, created.View.CanGoBack)
	assert.True(t, created.View.CanReset)

	w = do(t, h, http.MethodPost, "/sessions/"+id+"/actions", `{"type":"answer","question_id":"q1","option_id":"30to65"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeSession(t, w)
	require.Len(t, resp.View.Questions, 2)
	assert.Equal(t, "30to65", resp.View.Questions[0].SelectedOptionID)
	assert.Equal(t, "q3", resp.View.Questions[1].ID)
	assert.True(t, resp.View.CanGoBack)

	// Answered questions are locked.
	w = do(t, h, http.MethodPost, "/sessions/"+id+"/actions", `{"type":"answer","question_id":"q1","option_id":"under21"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "question_locked", decodeError(t, w).Code)

	w = do(t, h, http.MethodPost, "/sessions/"+id+"/actions", `{"type":"back"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.Equal(t, "q1", resp.State.CurrentQuestionID)
	assert.Empty(t, resp.State.History)

	w = do(t, h, http.MethodPost, "/sessions/"+id+"/actions", `{"type":"answer","question_id":"q1","option_id":"under21"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.NotEmpty(t, resp.View.Recommendation)
	assert.True(t, resp.View.Terminal())

	w = do(t, h, http.MethodGet, "/sessions/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp.State.Recommendation, decodeSession(t, w).State.Recommendation)

	w = do(t, h, http.MethodGet, "/catalogs/cervical/graph?session_id="+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "classDef")

	w = do(t, h, http.MethodDelete, "/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "session_not_found", decodeError(t, w).Code)
}

func TestServer_CreateSessionWithoutBody(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decodeSession(t, w)
	assert.Equal(t, domain.ScreenSelection, resp.View.Screen)
	assert.Len(t, resp.View.Catalogs, 2)

	w = do(t, h, http.MethodPost, "/sessions/"+resp.State.SessionID+"/actions", `{"type":"back"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "no_active_test", decodeError(t, w).Code)

	w = do(t, h, http.MethodPost, "/sessions", `{"catalog_id":"lung"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_CreateSessionRejectsDuplicateID(t *testing.T) {
	engine := runtime.NewEngine(builtin.MustLoad())
	h := httpadapter.NewHandler(engine, session.NewManager(memory.NewStore()),
		httpadapter.WithIDGenerator(func() string { return "fixed" }),
	)

	w := do(t, h, http.MethodPost, "/sessions", `{"catalog_id":"breast"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodPost, "/sessions", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "session_exists", decodeError(t, w).Code)

	w = do(t, h, http.MethodGet, "/sessions/fixed", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.TestScreen(builtin.Breast), decodeSession(t, w).View.Screen)
}

func TestServer_RejectsBadActions(t *testing.T) {
	h := newHandler(t)

	w := do(t, h, http.MethodPost, "/sessions", `{"catalog_id":"breast"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeSession(t, w).State.SessionID

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"type":`, "invalid_body"},
		{"unknown field", `{"type":"back","extra":1}`, "invalid_body"},
		{"unsupported type", `{"type":"jump"}`, "invalid_action"},
		{"answer without option", `{"type":"answer","question_id":"b1"}`, "invalid_action"},
		{"select without catalog", `{"type":"select_test"}`, "invalid_action"},
		{"unknown option", `{"type":"answer","question_id":"b1","option_id":"nope"}`, "invalid_action"},
		{"unknown question", `{"type":"answer","question_id":"zz","option_id":"yes"}`, "invalid_action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/sessions/"+id+"/actions", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}

	w = do(t, h, http.MethodPost, "/sessions/missing/actions", `{"type":"back"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusFor(t *testing.T) {
	status, code := httpadapter.StatusFor(domain.ErrQuestionLocked)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "question_locked", code)

	status, _ = httpadapter.StatusFor(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, status)
}
