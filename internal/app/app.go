// Package app wires configuration, adapters, services and the HTTP
// server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/capisco/capisco-backend/internal/adapter/llm"
	"github.com/capisco/capisco-backend/internal/adapter/transcript"
	"github.com/capisco/capisco-backend/internal/cache"
	"github.com/capisco/capisco-backend/internal/config"
	"github.com/capisco/capisco-backend/internal/enrich"
	"github.com/capisco/capisco-backend/internal/service/lesson"
	"github.com/capisco/capisco-backend/internal/transport/middleware"
	"github.com/capisco/capisco-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// lesson pipeline, and serves HTTP until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	wordCache := cache.New(cfg.Cache.Dir, logger)

	var generator enrich.Generator
	if cfg.LLM.APIKey != "" {
		generator = llm.NewClient(cfg.LLM, logger)
	} else {
		logger.Warn("no LLM API key configured, enrichment is heuristic only")
	}
	orchestrator := enrich.New(generator, wordCache, cfg.Enrich, logger)

	transcripts := transcript.NewClient(logger)
	if cfg.Transcript.BaseURL != "" {
		transcripts = transcript.NewClientWithURL(cfg.Transcript.BaseURL, logger)
	}

	lessonSvc := lesson.NewService(logger, transcripts, orchestrator, cfg.Lesson)
	if c, ok := generator.(*llm.Client); ok {
		lessonSvc.SetAnalyzer(c)
	}

	lessonHandler := rest.NewLessonHandler(lessonSvc, logger)
	healthHandler := rest.NewHealthHandler(transcripts, wordCache, generator != nil, BuildVersion())

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(60),
	)(rest.NewRouter(lessonHandler, healthHandler))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	// Flush any enrichments stored since the last save.
	wordCache.Save()
	return nil
}
