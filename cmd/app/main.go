package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptrelay/internal/callable"
	"promptrelay/internal/config"
	"promptrelay/internal/httpserver"
	"promptrelay/internal/llm"
	"promptrelay/internal/relay"
	"promptrelay/internal/runtimeconfig"
	"promptrelay/internal/transport"
	"log/slog"

	"github.com/joho/godotenv"
)

func main() {
	// .env нужен только локально, в облаке его нет.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	source := runtimeconfig.Select(cfg.Runtime.Emulator, cfg.Runtime.FilePath, cfg.Runtime.EnvVar)
	apiKey, err := runtimeconfig.APIKey(source)
	if err != nil {
		logger.Error("OpenAI API key is not set",
			slog.Bool("emulator", cfg.Runtime.Emulator),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	httpClient := transport.NewHTTPClient(cfg.RequestTimeout)
	llmClient := llm.NewOpenAIClient(apiKey, cfg.OpenAI, httpClient, logger)
	relayHandler := relay.New(llmClient, logger)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Logger:       logger,
		GenerateText: callable.Handle(relayHandler.GenerateText, logger),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.Bool("emulator", cfg.Runtime.Emulator))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

func newLogger(level string) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}
