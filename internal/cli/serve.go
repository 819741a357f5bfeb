package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	hhttp "portfolio-blog/internal/handler/http"
	"portfolio-blog/internal/observability/tracing"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the blog JSON API",
		Long: `Serve the JSON API over HTTP.

Posts are read from the content directory on every request, so edits are
visible without a restart. SIGINT and SIGTERM trigger a graceful shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions, cmd *cobra.Command) error {
	a, err := loadApp(opts.RootOptions, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	addr := a.cfg.Server.Addr
	if opts.Addr != "" {
		addr = opts.Addr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return serve(ctx, a, ln, opts.Version)
}

// serve runs the API on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, a *app, ln net.Listener, version string) error {
	shutdownTracing := tracing.Init()
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			a.logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	if err := a.reader.Ping(ctx); err != nil {
		a.logger.Warn("content directory not ready", slog.String("dir", a.reader.Dir()), slog.Any("error", err))
	}

	handler := hhttp.NewRouter(hhttp.RouterConfig{
		Repo:           a.repo,
		Content:        a.reader,
		Pagination:     a.cfg.Pagination(),
		RequestTimeout: a.cfg.Server.RequestTimeout,
		Version:        version,
		Logger:         a.logger,
	})

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting",
			slog.String("addr", ln.Addr().String()),
			slog.String("content_dir", a.reader.Dir()),
			slog.String("version", version))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	a.logger.Info("server stopped")
	return nil
}
