package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/oncoscreen"
	"github.com/aretw0/oncoscreen/pkg/domain"
	"github.com/aretw0/oncoscreen/pkg/ports"
	"github.com/aretw0/oncoscreen/pkg/session"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogsURI names the resource listing every loaded catalog.
const CatalogsURI = "oncoscreen://catalogs"

// SessionResponse aligns with the HTTP API and provides a unified structure across adapters.
type SessionResponse struct {
	State *domain.State `json:"state" jsonschema_description:"The stored session state"`
	View  *domain.View  `json:"view" jsonschema_description:"What should be shown to the user"`
}

// StartArgs are the arguments of the start_session tool.
type StartArgs struct {
	SessionID string `json:"session_id,omitempty"`
	CatalogID string `json:"catalog_id,omitempty"`
}

// DispatchArgs are the arguments of the dispatch tool.
type DispatchArgs struct {
	SessionID  string `json:"session_id" validate:"required"`
	Type       string `json:"type"`
	CatalogID  string `json:"catalog_id,omitempty"`
	QuestionID string `json:"question_id,omitempty"`
	OptionID   string `json:"option_id,omitempty"`
}

// Action converts the arguments to an engine action.
func (a DispatchArgs) Action() domain.Action {
	return domain.Action{
		Type:       domain.ActionType(a.Type),
		CatalogID:  a.CatalogID,
		QuestionID: a.QuestionID,
		OptionID:   a.OptionID,
	}
}

// ViewArgs are the arguments of the get_view tool.
type ViewArgs struct {
	SessionID string `json:"session_id" validate:"required"`
}

// Server wraps the engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Engine
	sessions  *session.Manager
	logger    *slog.Logger
	validate  *validator.Validate
	newID     func() string
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger. Stdout belongs to the protocol, so it must
// write elsewhere.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
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

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Engine, sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		engine:    engine,
		sessions:  sessions,
		logger:    slog.New(slog.DiscardHandler),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		newID:     uuid.NewString,
		mcpServer: server.NewMCPServer("oncoscreen-mcp", strings.TrimSpace(oncoscreen.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: list_tests
	s.mcpServer.AddTool(mcp.NewTool("list_tests",
		mcp.WithDescription("List the screening tests that can be started."),
	), s.handleListTests)

	// TOOL: start_session
	startTool := mcp.NewTool("start_session",
		mcp.WithDescription("Start a screening session. Optionally open a test right away."),
		mcp.WithString("catalog_id", mcp.Description("Test to open, as returned by list_tests (optional)")),
		mcp.WithString("session_id", mcp.Description("Session ID to use; one is generated when omitted")),
		mcp.WithOutputSchema[SessionResponse](),
	)
	s.mcpServer.AddTool(startTool, mcp.NewStructuredToolHandler(s.handleStartSession))

	// TOOL: dispatch
	dispatchTool := mcp.NewTool("dispatch",
		mcp.WithDescription("Apply a user action to a session: select_test, answer, back, reset or exit."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Action type"),
			mcp.Enum(string(domain.ActionSelectTest), string(domain.ActionAnswer), string(domain.ActionBack), string(domain.ActionReset), string(domain.ActionExit)),
		),
		mcp.WithString("catalog_id", mcp.Description("Test to open (select_test)")),
		mcp.WithString("question_id", mcp.Description("Question being answered (answer)")),
		mcp.WithString("option_id", mcp.Description("Chosen option (answer)")),
		mcp.WithOutputSchema[SessionResponse](),
	)
	s.mcpServer.AddTool(dispatchTool, mcp.NewStructuredToolHandler(s.handleDispatch))

	// TOOL: get_view
	viewTool := mcp.NewTool("get_view",
		mcp.WithDescription("Get the current state and view of a session."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithOutputSchema[SessionResponse](),
	)
	s.mcpServer.AddTool(viewTool, mcp.NewStructuredToolHandler(s.handleGetView))
}

func (s *Server) handleListTests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.engine.Catalogs().Summaries())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleStartSession(ctx context.Context, request mcp.CallToolRequest, args StartArgs) (SessionResponse, error) {
	id := args.SessionID
	if id == "" {
		id = s.newID()
	}

	state := s.engine.Start(id)
	if args.CatalogID != "" {
		next, err := s.engine.Dispatch(ctx, state, domain.SelectTest(args.CatalogID))
		if err != nil {
			return SessionResponse{}, fmt.Errorf("start failed: %w", err)
		}
		state = next
	}

	if err := s.sessions.Create(ctx, id, state); err != nil {
		return SessionResponse{}, fmt.Errorf("save failed: %w", err)
	}
	s.logger.Info("MCP session started", "session_id", id, "catalog_id", args.CatalogID)
	return s.respond(state)
}

func (s *Server) handleDispatch(ctx context.Context, request mcp.CallToolRequest, args DispatchArgs) (SessionResponse, error) {
	if err := s.validate.Struct(args); err != nil {
		return SessionResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}
	action := args.Action()
	if err := s.validate.Struct(action); err != nil {
		return SessionResponse{}, fmt.Errorf("%w: %v", domain.ErrUnknownAction, err)
	}

	state, err := s.sessions.Update(ctx, args.SessionID, func(current *domain.State) (*domain.State, error) {
		return s.engine.Dispatch(ctx, current, action)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.logger.Warn("MCP dispatch rejected", "session_id", args.SessionID, "action", action.String(), "err", err)
		}
		return SessionResponse{}, fmt.Errorf("dispatch failed: %w", err)
	}
	return s.respond(state)
}

func (s *Server) handleGetView(ctx context.Context, request mcp.CallToolRequest, args ViewArgs) (SessionResponse, error) {
	if err := s.validate.Struct(args); err != nil {
		return SessionResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}
	state, err := s.sessions.Load(ctx, args.SessionID)
	if err != nil {
		return SessionResponse{}, fmt.Errorf("load failed: %w", err)
	}
	return s.respond(state)
}

func (s *Server) respond(state *domain.State) (SessionResponse, error) {
	view, err := s.engine.View(state)
	if err != nil {
		return SessionResponse{}, fmt.Errorf("render failed: %w", err)
	}
	return SessionResponse{State: state, View: view}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: oncoscreen://catalogs
	s.mcpServer.AddResource(mcp.NewResource(CatalogsURI, "Screening catalogs",
		mcp.WithResourceDescription("Every loaded catalog with its questions and recommendations"),
		mcp.WithMIMEType("application/json"),
	), s.handleCatalogsResource)
}

func (s *Server) handleCatalogsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Catalogs().All())
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalogs: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CatalogsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
