package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"ytdlproxy/internal/cfg"
	"ytdlproxy/internal/command/execute"
	"ytdlproxy/internal/domain/consts"
	"ytdlproxy/internal/utils/logging"
	"ytdlproxy/internal/validation"
)

// StartServer listens on the configured address and serves until ctx is cancelled.
func StartServer(ctx context.Context, c *cfg.Config, ex execute.Extractor, policy *validation.SourcePolicy) error {
	ln, err := net.Listen("tcp", c.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr(), err)
	}
	logging.S("%s web server running on http://%s", consts.ProgramName, ln.Addr())
	return Serve(ctx, ln, NewRouter(c, ex, policy))
}

// Serve serves handler on ln until ctx is cancelled, then shuts down gracefully.
//
// In-flight downloads are given consts.ShutdownTimeout to finish.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: consts.ReadHeaderTimeout,
		IdleTimeout:       consts.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logging.I("Shutting down web server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), consts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
