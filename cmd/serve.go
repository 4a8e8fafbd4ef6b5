// cmd/serve.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/spf13/cobra"

	"github.com/gewnthar/flightpath/config"
	"github.com/gewnthar/flightpath/dataset"
	"github.com/gewnthar/flightpath/handlers"
	"github.com/gewnthar/flightpath/services"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the path finding API",
		Example: heredoc.Doc(`
			$ flightpath serve
			$ flightpath serve -c ./config.yaml --port 9090
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}
			logger := initLogger(cfg.LogLevel, os.Stdout)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := runServer(ctx, cfg, logger); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides server.port)")
	return cmd
}

func runServer(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	var (
		rows     services.RowStore
		datasets handlers.DatasetManager
	)
	if cfg.Search.Source == services.SourceDatabase {
		store, err := openStore(ctx, cfg.Database, logger)
		if err != nil {
			return err
		}
		defer store.Close()
		rows = store
		fetcher := dataset.NewDownloader(&http.Client{Timeout: cfg.Data.DownloadTimeout}, logger)
		datasets = services.NewDatasetService(cfg.Data, fetcher, store, logger)
	}

	loader := services.NewGraphLoader(cfg.Search.Source, cfg.Data, rows, logger)
	paths, err := services.NewPathService(loader, cfg.Search, logger)
	if err != nil {
		return err
	}
	// an empty database is filled later through /api/admin/refresh
	if _, err := paths.Reload(ctx); err != nil {
		logger.Warn("starting without a route graph", "err", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handlers.NewRouter(paths, datasets, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
