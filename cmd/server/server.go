package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/janhq/chat-demo-api/internal/config"
	"github.com/janhq/chat-demo-api/internal/domain/conversation"
	"github.com/janhq/chat-demo-api/internal/domain/file"
	"github.com/janhq/chat-demo-api/internal/domain/session"
	"github.com/janhq/chat-demo-api/internal/domain/stream"
	"github.com/janhq/chat-demo-api/internal/infrastructure/logger"
	"github.com/janhq/chat-demo-api/internal/infrastructure/observability"
	"github.com/janhq/chat-demo-api/internal/infrastructure/scripts"
	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver"
)

// @title Chat Demo API
// @version 1.0
// @description Scripted streaming backend for the chat UI demo
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	conversations, err := loadConversations(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load conversations")
	}
	store, err := conversation.NewStore(conversations)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize conversation store")
	}
	log.Info().
		Int("conversations", store.Len()).
		Str("source", conversationSource(cfg)).
		Msg("conversation store ready")

	sessionService := session.NewService(newSessionSettings(cfg), log)
	fileService := file.NewService(cfg.MaxUploadBytes, log)

	httpServer := httpserver.New(cfg, log, store, stream.NewSerializer(), sessionService, fileService)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadConversations(cfg *config.Config) ([]conversation.Conversation, error) {
	if cfg.ConversationsFile == "" {
		return conversation.Examples(), nil
	}
	return scripts.LoadFile(cfg.ConversationsFile, cfg.DefaultEventDelay)
}

func conversationSource(cfg *config.Config) string {
	if cfg.ConversationsFile == "" {
		return "built-in"
	}
	return cfg.ConversationsFile
}

func newSessionSettings(cfg *config.Config) session.Settings {
	return session.Settings{
		BotName:     cfg.BotName,
		MultiTurn:   cfg.MultiTurn,
		FileSupport: cfg.FileSupport,
	}
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
