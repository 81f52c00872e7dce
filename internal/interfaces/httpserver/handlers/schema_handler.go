package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"github.com/janhq/chat-demo-api/internal/domain/stream"
)

// SchemaHandler publishes the JSON schema of each stream record class.
type SchemaHandler struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaHandler reflects the schemas once.
func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{schemas: stream.Schemas()}
}

// Get handles GET /schema
// @Summary Stream record schemas
// @Description JSON schema of the data object for every record class.
// @Tags Chat
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /schema [get]
func (h *SchemaHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.schemas)
}
