package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/janhq/chat-demo-api/internal/domain/file"
	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver/responses"
)

// multipartOverhead leaves room for the session field and part headers on top
// of the file itself.
const multipartOverhead = 64 << 10

// maxMemory is how much of a multipart form is kept in memory before spilling
// to temporary files.
const maxMemory = 8 << 20

// FileHandler accepts and "deletes" uploads. Nothing is persisted.
type FileHandler struct {
	service *file.Service
	log     zerolog.Logger
}

// NewFileHandler constructs the handler.
func NewFileHandler(service *file.Service, log zerolog.Logger) *FileHandler {
	return &FileHandler{
		service: service,
		log:     log.With().Str("handler", "file").Logger(),
	}
}

// Upload handles POST /file
// @Summary Upload a file
// @Description Accepts a file for a session and returns a new file id. The content is discarded.
// @Tags Chat
// @Accept multipart/form-data
// @Produce json
// @Param session formData string true "Session ID"
// @Param file formData file true "File to upload"
// @Success 200 {string} string "File ID"
// @Failure 413 {object} responses.ErrorResponse
// @Failure 422 {object} responses.ErrorResponse
// @Router /file [post]
func (h *FileHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.service.MaxBytes()+multipartOverhead)
	if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			responses.HandleError(c, http.StatusRequestEntityTooLarge, err, "file too large")
			return
		}
		responses.ValidationError(c, fmt.Errorf("multipart form required: %w", err))
		return
	}

	sessionID, ok := c.GetPostForm("session")
	if !ok {
		responses.ValidationError(c, errors.New("session is required"))
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		responses.ValidationError(c, errors.New("file is required"))
		return
	}

	body, err := header.Open()
	if err != nil {
		h.log.Error().Err(err).Msg("open upload")
		responses.HandleError(c, http.StatusInternalServerError, err, "failed to read file")
		return
	}
	defer body.Close()

	receipt, err := h.service.Accept(c.Request.Context(), file.Upload{
		SessionID: sessionID,
		Filename:  header.Filename,
		Body:      body,
	})
	if err != nil {
		if errors.Is(err, file.ErrTooLarge) {
			responses.HandleError(c, http.StatusRequestEntityTooLarge, err, "file too large")
			return
		}
		h.log.Error().Err(err).Msg("accept upload")
		responses.HandleError(c, http.StatusInternalServerError, err, "failed to read file")
		return
	}

	c.JSON(http.StatusOK, receipt.ID)
}

// Delete handles DELETE /file
// @Summary Delete a file
// @Description Acknowledges the request; there is nothing stored to remove.
// @Tags Chat
// @Accept x-www-form-urlencoded
// @Produce json
// @Param session formData string false "Session ID"
// @Success 200 {object} responses.StatusResponse
// @Router /file [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	sessionID := c.PostForm("session")
	if sessionID == "" {
		sessionID = c.Query("session")
	}
	h.service.Delete(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, responses.OK)
}
