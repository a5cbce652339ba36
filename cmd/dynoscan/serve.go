package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dynoscan/internal/metrics"
	chiTransport "github.com/kailas-cloud/dynoscan/internal/transport/chi"
	mcpTransport "github.com/kailas-cloud/dynoscan/internal/transport/mcp"
	"github.com/kailas-cloud/dynoscan/internal/version"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve describe_table_schema and scan_table as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			srv := mcpTransport.NewServer(a.schema, a.scan, version.Version, a.logger)
			return srv.ServeStdio(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newHTTPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "http",
		Short: "Serve the schema and scan API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := opts.bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			metrics.RegisterHTTPMetrics()
			metrics.RegisterScanMetrics()

			return serveHTTP(cmd.Context(), a)
		},
	}
}

// serveHTTP blocks until ctx is cancelled, then drains in-flight requests.
func serveHTTP(ctx context.Context, a *app) error {
	server := chiTransport.NewServer(a.schema, a.scan, a.health, a.logger)
	handler := chiTransport.NewRouter(server, a.cfg.Auth.APIKeys, a.logger)

	addr := fmt.Sprintf(":%d", a.cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       time.Duration(a.cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(a.cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(a.cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	a.logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Error during shutdown", zap.Error(err))
		return fmt.Errorf("http shutdown: %w", err)
	}

	a.logger.Info("Server stopped gracefully")
	return nil
}
