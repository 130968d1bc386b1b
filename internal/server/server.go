// Package server assembles the application: configuration, logging,
// telemetry, storage, services, and the HTTP surface, plus lifecycle
// management for startup and graceful shutdown.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"cricket-scoring-service/internal/app/matches"
	"cricket-scoring-service/internal/app/rosters"
	"cricket-scoring-service/internal/app/scoring"
	"cricket-scoring-service/internal/app/stats"
	"cricket-scoring-service/internal/auth"
	"cricket-scoring-service/internal/config"
	httpserver "cricket-scoring-service/internal/http"
	"cricket-scoring-service/internal/http/handlers"
	"cricket-scoring-service/internal/logging"
	"cricket-scoring-service/internal/metrics"
	"cricket-scoring-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.Store
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	storeClose    func(context.Context) error
}

// New constructs a fully wired server. The store backend follows the
// config: a Mongo URI selects the document store, otherwise everything
// runs in memory.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config(cfg.Log))
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	st, storeClose, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	verifier, err := auth.NewVerifier(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	httpSrv := buildHTTPServer(cfg, st, verifier, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         st,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		storeClose:    storeClose,
	}, nil
}

func buildStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store.Store, func(context.Context) error, error) {
	if cfg.Mongo.URI == "" {
		logging.Info(logger, "using in-memory store")
		return store.NewMemory(), nil, nil
	}

	mongoStore, disconnect, err := store.NewMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return nil, nil, err
	}
	logging.Info(logger, "connected to mongodb", slog.String("database", cfg.Mongo.Database))
	return mongoStore, disconnect, nil
}

func buildHTTPServer(cfg config.Config, st store.Store, verifier *auth.Verifier, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	matchSvc := matches.NewService(st, st, st, logger)
	scoringSvc := scoring.NewService(st, st, logger, recorder)
	statsSvc := stats.NewService(st, st, logger)
	rosterSvc := rosters.NewService(st, st, st, logger)

	handler := handlers.New(matchSvc, scoringSvc, statsSvc, rosterSvc, st.Ping, logger)
	router := httpserver.NewRouter(handler, verifier, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
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
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
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

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

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
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.storeClose != nil {
		if err := s.storeClose(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("store disconnect failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
