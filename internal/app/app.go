package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"IntelFeed/internal/aggregate"
	"IntelFeed/internal/config"
	"IntelFeed/internal/fetch"
	"IntelFeed/internal/logging"
	"IntelFeed/internal/pipeline"
	"IntelFeed/internal/server"
)

// Application wires config to the pipelines, aggregator and HTTP boundary.
type Application struct {
	logger *slog.Logger
	server *http.Server
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	fetcher := fetch.NewClient(cfg.Fetch, baseLogger.With("component", "fetch"))

	aggregator := aggregate.New(aggregate.Deps{
		NIS2: pipeline.NewNIS2(fetcher, cfg.Sources.NIS2PageURL,
			baseLogger.With("component", "pipeline.nis2")),
		Threat: pipeline.NewThreat(fetcher, cfg.Sources.ThreatFeedURL, cfg.Sources.FeedIndexURL,
			baseLogger.With("component", "pipeline.threat")),
		CVE: pipeline.NewCVE(fetcher, cfg.Sources.CVEFeedURL,
			baseLogger.With("component", "pipeline.cve")),
		EPSS: pipeline.NewEPSS(fetcher, cfg.Sources.EPSSPageURL,
			baseLogger.With("component", "pipeline.epss")),
		Logger: baseLogger.With("component", "aggregate"),
	})

	handler := server.New(aggregator, baseLogger.With("component", "server"))

	return &Application{
		logger: baseLogger,
		server: &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           handler.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until the context is cancelled or a signal arrives, then shuts
// down gracefully.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.ListenAndServe()
	}()
	a.logger.Info("listening", "addr", a.server.Addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		a.logger.Info("stopped")
		return nil
	}
}
