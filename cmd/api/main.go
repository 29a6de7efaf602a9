package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"cruxpad/internal/config"
	"cruxpad/internal/handlers"
	"cruxpad/internal/http"
	"cruxpad/internal/llm"
	"cruxpad/internal/prompt"
	"cruxpad/internal/service"
	"cruxpad/internal/session"
	"cruxpad/internal/storage"
	"cruxpad/web"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API turns study material into a concise, card-based cheatsheet.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: CruxPad API
//   description: |
//     Summarizes pasted text or uploaded PDF and text files with an LLM, splits the
//     reply into cheatsheet items and exports them as plain text or a themed A4 PDF.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
//   - multipart/form-data
// produces:
//   - application/json
//   - text/plain
//   - application/pdf

const (
	shutdownTimeout = 10 * time.Second
	janitorInterval = 10 * time.Minute
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	prefRepo := storage.NewPreferenceRepo(db)
	sessions := session.NewStore()

	var (
		provider service.SummarizationProvider
		models   handlers.ModelChecker
	)
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		gemini, err := llm.NewGeminiClient(ctx, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL, cfg.LLMTimeout)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		provider = gemini
	default:
		client := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, llm.WithTimeout(cfg.LLMTimeout))
		provider = client
		models = client
	}
	slog.Info("LLM provider configured", "provider", cfg.LLMProvider, "model", cfg.LLMModel)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "timeout", cfg.LLMTimeout)

	svc := service.NewCheatsheetService(provider, prefRepo, sessions,
		service.WithPromptBuilder(prompt.NewBuilder(prompt.WithMaxChars(cfg.PromptMaxChars))),
		service.WithAutoSummarizeThreshold(cfg.AutoSummarizeThreshold),
	)

	router := http.NewRouter(&http.Deps{
		CheatsheetService: svc,
		DB:                db,
		Models:            models,
		MaxUploadBytes:    cfg.MaxUploadBytes,
		IndexHTML:         web.IndexHTML,
	})

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting API server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if n := sessions.Prune(cfg.SessionTTL); n > 0 {
					slog.Debug("Pruned idle cheatsheets", "count", n, "remaining", sessions.Len())
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("API server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("API server stopped")
}
