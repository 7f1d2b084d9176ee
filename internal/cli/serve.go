package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	httpadapter "github.com/aretw0/oncoscreen/pkg/adapters/http"
	mcpadapter "github.com/aretw0/oncoscreen/pkg/adapters/mcp"
)

const shutdownTimeout = 5 * time.Second

// Handler builds the HTTP handler for the app.
func Handler(app *App) http.Handler {
	opts := []httpadapter.Option{httpadapter.WithLogger(app.Logger)}
	if app.Metrics != nil {
		opts = append(opts, httpadapter.WithMetrics(app.Metrics.Handler()))
	}
	return httpadapter.NewHandler(app.Engine, app.Sessions, opts...)
}

// Serve runs the HTTP API on the listener until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, app *App, ln net.Listener) error {
	if _, err := httpadapter.LoadSpec(ctx); err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           Handler(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		app.Logger.Info("http server listening", "addr", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		app.Logger.Info("shutdown requested")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		app.Logger.Info("http server stopped gracefully")
		return nil
	}
}

// ListenAndServe listens on the configured address and calls Serve.
func ListenAndServe(ctx context.Context, app *App) error {
	ln, err := net.Listen("tcp", app.Config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", app.Config.HTTPAddr, err)
	}
	return Serve(ctx, app, ln)
}

// ServeMCP runs the MCP server on Stdin/Stdout.
func ServeMCP(app *App) error {
	app.Logger.Info("starting MCP server (stdio)")
	srv := mcpadapter.NewServer(app.Engine, app.Sessions, mcpadapter.WithLogger(app.Logger))
	return srv.ServeStdio()
}
