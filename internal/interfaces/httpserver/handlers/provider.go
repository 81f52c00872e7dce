package handlers

import (
	"github.com/rs/zerolog"

	"github.com/janhq/chat-demo-api/internal/domain/file"
	"github.com/janhq/chat-demo-api/internal/domain/session"
	"github.com/janhq/chat-demo-api/internal/domain/stream"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Session *SessionHandler
	Stream  *StreamHandler
	File    *FileHandler
	Schema  *SchemaHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	conversations ConversationSelector,
	serializer *stream.Serializer,
	sessionService *session.Service,
	fileService *file.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Session: NewSessionHandler(sessionService),
		Stream:  NewStreamHandler(conversations, serializer, log),
		File:    NewFileHandler(fileService, log),
		Schema:  NewSchemaHandler(),
	}
}
