package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver/handlers"
	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver/routes/chatui"
)

// Provider coordinates all route registrations.
type Provider struct {
	ChatUI *chatui.Routes
}

// NewProvider constructs the route provider.
func NewProvider(handlerProvider *handlers.Provider) *Provider {
	return &Provider{
		ChatUI: chatui.NewRoutes(handlerProvider),
	}
}

// Register attaches all available routes to the gin engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.ChatUI.Register(engine)
}
