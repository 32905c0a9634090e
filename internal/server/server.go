// Package server runs the HTTP surface over a record store: read routes for
// teams and players, roster import, and the Prometheus metrics listener.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/football-asset-generator/internal/app/players"
	"github.com/preston-bernstein/football-asset-generator/internal/app/teams"
	"github.com/preston-bernstein/football-asset-generator/internal/assetdb"
	"github.com/preston-bernstein/football-asset-generator/internal/config"
	httpserver "github.com/preston-bernstein/football-asset-generator/internal/http"
	"github.com/preston-bernstein/football-asset-generator/internal/http/handlers"
	"github.com/preston-bernstein/football-asset-generator/internal/http/middleware"
	"github.com/preston-bernstein/football-asset-generator/internal/logging"
	"github.com/preston-bernstein/football-asset-generator/internal/metrics"
	"github.com/preston-bernstein/football-asset-generator/internal/reconcile"
	"github.com/preston-bernstein/football-asset-generator/internal/roster"
	"github.com/preston-bernstein/football-asset-generator/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the HTTP listeners and the backend they read from.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	backend       store.Backend
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server over backend. The server closes backend on
// shutdown.
func New(cfg config.Config, logger *slog.Logger, backend store.Backend) *Server {
	return newServerWithMetrics(cfg, logger, backend, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, backend store.Backend, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		backend:       backend,
		httpServer:    buildHTTPServer(cfg, backend, recorder, logger),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, backend store.Backend, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		backend:    backend,
		httpServer: httpSrv,
	}
}

// buildRouter wires the read services and import handler over backend.
// Every request opens its own asset database session.
func buildRouter(cfg config.Config, backend store.Backend, recorder *metrics.Recorder, logger *slog.Logger) http.Handler {
	open := func() *assetdb.Database { return assetdb.Open(backend, logger) }
	teamSvc := teams.NewService(func() teams.Store { return open() }, cfg.Folders.Teams)
	playerSvc := players.NewService(func() players.Store { return open() }, cfg.Folders.Players)

	importer := sessionImporter{
		open:    open,
		folders: cfg.Folders,
		opts: roster.Options{
			EnsurePrefab:  cfg.Import.EnsurePrefab,
			PrefabName:    cfg.Generator.PrefabName,
			DefaultRadius: cfg.Generator.InterceptRadius,
		},
		metrics: recorder,
		logger:  logger,
	}

	handler := handlers.NewHandler(teamSvc, playerSvc, logger)
	imports := handlers.NewImportHandler(importer, cfg.Server.ImportToken, cfg.Server.MaxImportBytes, logger)
	return httpserver.NewRouter(handler, imports)
}

func buildHTTPServer(cfg config.Config, backend store.Backend, recorder *metrics.Recorder, logger *slog.Logger) httpServer {
	wrapped := middleware.LoggingMiddleware(logger, recorder, buildRouter(cfg, backend, recorder, logger))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// sessionImporter runs each import in a fresh asset database session.
type sessionImporter struct {
	open    func() *assetdb.Database
	folders config.FolderConfig
	opts    roster.Options
	metrics *metrics.Recorder
	logger  *slog.Logger
}

func (s sessionImporter) Import(ctx context.Context, data []byte, format roster.Format) (roster.Result, error) {
	r := reconcile.New(s.open(), s.folders, s.metrics, s.logger)
	return roster.NewImporter(r, s.opts, s.metrics, s.logger).Import(ctx, data, format)
}

// Run starts the listeners, then waits for context cancellation to shut down
// gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(error) {
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

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Backend closes after the listener has drained.
	if s.backend != nil {
		if err := s.backend.Close(); err != nil {
			logging.Error(s.logger, "close backend failed", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

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
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           mux,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
