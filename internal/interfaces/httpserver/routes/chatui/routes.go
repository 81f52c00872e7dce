package chatui

import (
	"github.com/gin-gonic/gin"

	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver/handlers"
)

// Routes registers the endpoints the chat UI frontend calls. They live at the
// root because the frontend builds its URLs without a version prefix.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the chat UI route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches the chat routes.
func (r *Routes) Register(router gin.IRouter) {
	registerSessionRoutes(router, r.handlers.Session)
	registerStreamRoutes(router, r.handlers.Stream)
	registerFileRoutes(router, r.handlers.File)
	router.GET("/schema", r.handlers.Schema.Get)
}

func registerSessionRoutes(router gin.IRoutes, handler *handlers.SessionHandler) {
	router.POST("/session", handler.Start)
	router.GET("/session", handler.Start)
}

func registerStreamRoutes(router gin.IRoutes, handler *handlers.StreamHandler) {
	router.POST("/stream", handler.Stream)
}

func registerFileRoutes(router gin.IRoutes, handler *handlers.FileHandler) {
	router.POST("/file", handler.Upload)
	router.DELETE("/file", handler.Delete)
}
