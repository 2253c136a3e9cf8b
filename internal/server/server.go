// Package server assembles the upstream clients, cache, aggregation
// service, refresher, and HTTP surface into one runnable unit.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"fixtures-service/internal/aggregate"
	"fixtures-service/internal/cache"
	"fixtures-service/internal/config"
	"fixtures-service/internal/logging"
	"fixtures-service/internal/metrics"
	"fixtures-service/internal/refresh"
	"fixtures-service/internal/upstream"
	"fixtures-service/internal/upstream/proxy"
	"fixtures-service/internal/upstream/sportsdb"
	"fixtures-service/internal/web"
)

var metricsSetup = metrics.Setup

// Refresher is the background loop the server starts and stops.
type Refresher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() refresh.Status
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	aggregator    *aggregate.Service
	httpServer    httpServer
	metricsServer httpServer
	refresher     Refresher
	metricsStop   func(context.Context) error
}

// New constructs a server with default upstream and refresher wiring.
func New(cfg config.Config, catalog config.Catalog, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	sportsDB := sportsdb.NewClient(sportsdb.Config{
		BaseURL:    cfg.SportsDBBaseURL,
		APIKey:     catalog.APIKey,
		HTTPClient: httpClient,
	})

	var schedule upstream.ScheduleSource
	if cfg.ProxyBaseURL != "" {
		schedule = proxy.NewClient(proxy.Config{
			BaseURL:    cfg.ProxyBaseURL,
			HTTPClient: httpClient,
		})
	}

	store := cache.NewStore(catalog.TTL, cache.WithLookupObserver(recorder.RecordCacheLookup))
	aggregator := aggregate.NewService(aggregate.Deps{
		Catalog:      catalog,
		Events:       sportsDB,
		Refs:         sportsDB,
		Schedule:     schedule,
		Cache:        store,
		Logger:       logger,
		Metrics:      recorder,
		Workers:      cfg.DigestWorkers,
		FetchTimeout: cfg.HTTPTimeout,
	})

	var refresher Refresher
	if cfg.RefreshEnabled {
		refresher = refresh.New(aggregator, logger, cfg.RefreshInterval)
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		aggregator:    aggregator,
		httpServer:    buildHTTPServer(cfg, catalog, aggregator, logger, recorder, refresher),
		metricsServer: metricsSrv,
		refresher:     refresher,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, refresher Refresher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		refresher:  refresher,
	}
}

func buildHTTPServer(cfg config.Config, catalog config.Catalog, aggregator web.Aggregator, logger *slog.Logger, recorder *metrics.Recorder, refresher Refresher) httpServer {
	var statusFn func() refresh.Status
	if refresher != nil {
		statusFn = refresher.Status
	}

	handler := web.NewHandler(aggregator, catalog, logger, statusFn)
	router := web.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := web.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Run starts the refresher and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.refresher != nil {
		s.refresher.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.refresher != nil {
		if err := s.refresher.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop refresher", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
