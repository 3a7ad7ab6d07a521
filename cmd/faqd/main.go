package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fundwise/faqd/internal/config"
	"github.com/fundwise/faqd/internal/domain/faq"
	logpkg "github.com/fundwise/faqd/internal/logger"
	"github.com/fundwise/faqd/internal/metrics"
	"github.com/fundwise/faqd/internal/repository/kb"
	chiTransport "github.com/fundwise/faqd/internal/transport/chi"
	healthuc "github.com/fundwise/faqd/internal/usecase/health"
	queryuc "github.com/fundwise/faqd/internal/usecase/query"
	"github.com/fundwise/faqd/internal/version"
)

func main() {
	// Load .env if present, then configuration based on ENV
	_ = godotenv.Load()
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting faqd API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("build_date", version.Date),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("kb_source", cfg.KnowledgeBase.Source),
		zap.Float64("match_threshold", cfg.Matching.Threshold),
	)

	// Build the knowledge base once; it is immutable for the process
	// lifetime. Load failures degrade to an empty base, never a crash.
	knowledge := loadKnowledgeBase(cfg, logger)

	// Register query metrics explicitly (no init())
	metrics.RegisterQueryMetrics()

	querySvc := queryuc.New(knowledge, cfg.Matching.Threshold)
	healthSvc := healthuc.New(knowledge)

	server := chiTransport.NewServer(querySvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// loadKnowledgeBase selects the configured source and reads the FAQ
// document once.
func loadKnowledgeBase(cfg config.Config, logger *zap.Logger) *faq.KnowledgeBase {
	ctx := context.Background()

	switch cfg.KnowledgeBase.Source {
	case "redis":
		src, err := kb.NewRedisSource(kb.RedisConfig{
			Addrs:    cfg.KnowledgeBase.Addrs,
			Password: cfg.KnowledgeBase.Password,
			Key:      cfg.KnowledgeBase.Key,
		})
		if err != nil {
			logger.Warn("failed to create redis source, starting empty", zap.Error(err))
			return faq.Empty()
		}
		defer src.Close()

		timeout := time.Duration(cfg.KnowledgeBase.ReadinessTimeout) * time.Second
		if err := src.WaitForReady(ctx, timeout); err != nil {
			logger.Warn("redis not ready, starting empty", zap.Error(err))
			return faq.Empty()
		}
		return kb.Load(ctx, src, logger)
	default:
		return kb.Load(ctx, kb.NewFileSource(cfg.KnowledgeBase.Path), logger)
	}
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
// The cause is logged for operators; the client sees a generic message.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"status":     "error",
						"error_type": "server_error",
						"message":    "An error occurred while processing your query",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.NewContext(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
