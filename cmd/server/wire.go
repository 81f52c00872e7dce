//go:build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/janhq/chat-demo-api/internal/config"
	"github.com/janhq/chat-demo-api/internal/domain/conversation"
	"github.com/janhq/chat-demo-api/internal/domain/file"
	"github.com/janhq/chat-demo-api/internal/domain/session"
	"github.com/janhq/chat-demo-api/internal/domain/stream"
	"github.com/janhq/chat-demo-api/internal/infrastructure/logger"
	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver"
	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver/handlers"
)

var conversationSet = wire.NewSet(
	loadConversations,
	conversation.NewStore,
	wire.Bind(new(handlers.ConversationSelector), new(*conversation.Store)),
	stream.NewSerializer,
)

var chatSet = wire.NewSet(
	newSessionSettings,
	session.NewService,
	newFileService,
)

// BuildApplication assembles the chat demo service with Wire.
func BuildApplication() (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		conversationSet,
		chatSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newFileService(cfg *config.Config, log zerolog.Logger) *file.Service {
	return file.NewService(cfg.MaxUploadBytes, log)
}
