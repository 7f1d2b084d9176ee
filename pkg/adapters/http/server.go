package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/oncoscreen"
	"github.com/aretw0/oncoscreen/internal/presentation/graph"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/ports"
	"github.com/aretw0/oncoscreen/pkg/session"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

const maxBodyBytes = 64 << 10

// sessionBody mirrors the SessionResponse schema with the domain types.
type sessionBody struct {
	State *domain.State `json:"state"`
	View  *domain.View  `json:"view"`
}

// Server implements the generated ServerInterface.
type Server struct {
	engine     ports.Engine
	sessions   *session.Manager
	logger     *slog.Logger
	validate   *validator.Validate
	metrics    http.Handler
	newID      func() string
	apiVersion string
}

var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics mounts a metrics handler on /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithIDGenerator overrides how new session IDs are created.
func WithIDGenerator(fn func() string) Option {
	return func(s *Server) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewServer creates a Server. The embedded OpenAPI document is validated once here.
func NewServer(engine ports.Engine, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		engine:     engine,
		sessions:   sessions,
		logger:     slog.New(slog.DiscardHandler),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		newID:      uuid.NewString,
		apiVersion: "unknown",
	}
	for _, opt := range opts {
		opt(s)
	}

	if doc, err := LoadSpec(context.Background()); err != nil {
		s.logger.Error("openapi document rejected", "err", err)
	} else if doc.Info != nil {
		s.apiVersion = doc.Info.Version
	}
	return s
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine ports.Engine, sessions *session.Manager, opts ...Option) http.Handler {
	return NewServer(engine, sessions, opts...).Routes()
}

// LoadSpec decodes the embedded OpenAPI document and validates it.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to decode openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// Routes builds the router. Operation routes come from the generated HandlerWithOptions.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			s.logger.Error("openapi document unavailable", "err", err)
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(spec)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	handler := HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
	return enableCORS(handler)
}

func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeBadRequest(w, "invalid_param", err)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	app := "oncoscreen-http"
	version := strings.TrimSpace(oncoscreen.Version)
	s.writeJSON(w, http.StatusOK, Info{
		App:        &app,
		Version:    &version,
		ApiVersion: &s.apiVersion,
	})
}

// ListCatalogs handles GET /catalogs.
func (s *Server) ListCatalogs(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Catalogs().Summaries())
}

// GetCatalog handles GET /catalogs/{catalogID}.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request, catalogID CatalogID) {
	c, ok := s.engine.Catalogs().Get(catalogID)
	if !ok {
		s.writeError(w, domain.ErrUnknownCatalog)
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

// GetCatalogGraph handles GET /catalogs/{catalogID}/graph.
func (s *Server) GetCatalogGraph(w http.ResponseWriter, r *http.Request, catalogID CatalogID, params GetCatalogGraphParams) {
	c, ok := s.engine.Catalogs().Get(catalogID)
	if !ok {
		s.writeError(w, domain.ErrUnknownCatalog)
		return
	}

	var overlay *graph.Overlay
	if params.SessionId != nil && *params.SessionId != "" {
		state, err := s.sessions.Load(r.Context(), *params.SessionId)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if state.Screen.CatalogID() == c.ID() {
			overlay = graph.OverlayFromState(state)
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(c, overlay))
}

// CreateSession handles POST /sessions. The body is optional and may name
// a catalog to open right away.
func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	var body CreateSessionJSONRequestBody
	if err := s.decode(w, r, &body); err != nil && !errors.Is(err, io.EOF) {
		s.writeBadRequest(w, "invalid_body", err)
		return
	}
	catalogID := deref(body.CatalogId)

	id := s.newID()
	state := s.engine.Start(id)
	if catalogID != "" {
		next, err := s.engine.Dispatch(r.Context(), state, domain.SelectTest(catalogID))
		if err != nil {
			s.writeError(w, err)
			return
		}
		state = next
	}

	if err := s.sessions.Create(r.Context(), id, state); err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Info("session created", "session_id", id, "catalog_id", catalogID)
	s.respondSession(w, http.StatusCreated, state)
}

// GetSession handles GET /sessions/{sessionID}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, sessionID SessionID) {
	state, err := s.sessions.Load(r.Context(), sessionID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondSession(w, http.StatusOK, state)
}

// DeleteSession handles DELETE /sessions/{sessionID}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request, sessionID SessionID) {
	if _, err := s.sessions.Load(r.Context(), sessionID); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.sessions.Delete(r.Context(), sessionID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DispatchAction handles POST /sessions/{sessionID}/actions.
func (s *Server) DispatchAction(w http.ResponseWriter, r *http.Request, sessionID SessionID) {
	var body DispatchActionJSONRequestBody
	if err := s.decode(w, r, &body); err != nil {
		s.writeBadRequest(w, "invalid_body", err)
		return
	}
	action := mapActionToDomain(body)
	if err := s.validate.Struct(action); err != nil {
		s.writeBadRequest(w, "invalid_action", err)
		return
	}

	state, err := s.sessions.Update(r.Context(), sessionID, func(current *domain.State) (*domain.State, error) {
		return s.engine.Dispatch(r.Context(), current, action)
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respondSession(w, http.StatusOK, state)
}

// -- Helpers --

func mapActionToDomain(a Action) domain.Action {
	return domain.Action{
		Type:       domain.ActionType(a.Type),
		CatalogID:  deref(a.CatalogId),
		QuestionID: deref(a.QuestionId),
		OptionID:   deref(a.OptionId),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *Server) respondSession(w http.ResponseWriter, status int, state *domain.State) {
	view, err := s.engine.View(state)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, status, sessionBody{State: state, View: view})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeBadRequest(w http.ResponseWriter, code string, err error) {
	s.logger.Warn("request rejected", "code", code, "err", err)
	s.writeJSON(w, http.StatusBadRequest, Error{Error: err.Error(), Code: code})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, code := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, Error{Error: err.Error(), Code: code})
}

// StatusFor maps engine and store errors to an HTTP status and error code.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "session_not_found"
	case errors.Is(err, domain.ErrUnknownCatalog):
		return http.StatusNotFound, "unknown_catalog"
	case errors.Is(err, domain.ErrSessionExists):
		return http.StatusConflict, "session_exists"
	case errors.Is(err, domain.ErrQuestionLocked):
		return http.StatusConflict, "question_locked"
	case errors.Is(err, domain.ErrNoActiveTest):
		return http.StatusConflict, "no_active_test"
	case errors.Is(err, domain.ErrUnknownQuestion),
		errors.Is(err, domain.ErrUnknownOption),
		errors.Is(err, domain.ErrUnknownAction):
		return http.StatusBadRequest, "invalid_action"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
