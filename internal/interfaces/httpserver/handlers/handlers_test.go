package handlers_test

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/chat-demo-api/internal/domain/conversation"
	"github.com/janhq/chat-demo-api/internal/domain/file"
	"github.com/janhq/chat-demo-api/internal/domain/session"
	"github.com/janhq/chat-demo-api/internal/domain/stream"
	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver/handlers"
	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver/routes/chatui"
)

// fixedSelector always returns the same conversation and counts selections.
type fixedSelector struct {
	mu    sync.Mutex
	index int
	conv  conversation.Conversation
	calls int
}

func (f *fixedSelector) SelectNext() (int, conversation.Conversation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.index, f.conv
}

func (f *fixedSelector) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func setupTestRouter(selector handlers.ConversationSelector, maxUpload int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	provider := handlers.NewProvider(
		selector,
		stream.NewSerializer(),
		session.NewService(session.Settings{BotName: "ExampleBot", MultiTurn: true, FileSupport: true}, zerolog.Nop()),
		file.NewService(maxUpload, zerolog.Nop()),
		zerolog.Nop(),
	)
	chatui.NewRoutes(provider).Register(r)
	return r
}
