package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/janhq/chat-demo-api/internal/domain/session"
	"github.com/janhq/chat-demo-api/internal/infrastructure/metrics"
)

// SessionHandler hands out chat sessions.
type SessionHandler struct {
	service *session.Service
}

// NewSessionHandler constructs the handler.
func NewSessionHandler(service *session.Service) *SessionHandler {
	return &SessionHandler{service: service}
}

// Start handles GET and POST /session
// @Summary Start a chat session
// @Description Returns the bot name, a new session id and the supported features.
// @Tags Chat
// @Produce json
// @Success 200 {object} session.Info
// @Router /session [post]
func (h *SessionHandler) Start(c *gin.Context) {
	info := h.service.Start(c.Request.Context())
	metrics.RecordSession()
	c.JSON(http.StatusOK, info)
}
