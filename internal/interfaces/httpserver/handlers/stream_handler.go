package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/chat-demo-api/internal/domain/conversation"
	"github.com/janhq/chat-demo-api/internal/domain/stream"
	"github.com/janhq/chat-demo-api/internal/infrastructure/metrics"
	"github.com/janhq/chat-demo-api/internal/infrastructure/observability"
	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver/requests"
	"github.com/janhq/chat-demo-api/internal/interfaces/httpserver/responses"
)

// StreamContentType is the content type of /stream replies. The body is one
// JSON object per line.
const StreamContentType = "application/json"

// ConversationSelector picks the conversation for the next stream.
type ConversationSelector interface {
	SelectNext() (int, conversation.Conversation)
}

// StreamHandler writes scripted replies as newline delimited JSON.
type StreamHandler struct {
	conversations ConversationSelector
	serializer    *stream.Serializer
	tracer        *observability.StreamTracer
	log           zerolog.Logger
}

// NewStreamHandler constructs the handler.
func NewStreamHandler(conversations ConversationSelector, serializer *stream.Serializer, log zerolog.Logger) *StreamHandler {
	return &StreamHandler{
		conversations: conversations,
		serializer:    serializer,
		tracer:        observability.NewStreamTracer(),
		log:           log.With().Str("handler", "stream").Logger(),
	}
}

// Stream handles POST /stream
// @Summary Stream a scripted reply
// @Description Ignores the message and streams the next canned conversation, one JSON record per line.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body requests.StreamRequest true "Chat message"
// @Success 200 {object} stream.Record
// @Failure 422 {object} responses.ErrorResponse
// @Router /stream [post]
func (h *StreamHandler) Stream(c *gin.Context) {
	var req requests.StreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationError(c, err)
		return
	}

	index, conv := h.conversations.SelectNext()
	name := conv.Name
	if name == "" {
		name = strconv.Itoa(index)
	}
	log := h.log.With().
		Str("session", *req.Session).
		Int("conversation", index).
		Str("conversation_name", name).
		Logger()

	ctx, span := h.tracer.Start(c.Request.Context(), index, name, len(conv.Events), len(req.Files))

	c.Header("Content-Type", StreamContentType)
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	metrics.RecordStreamStart(name)
	defer metrics.RecordStreamEnd()
	log.Debug().Int("files", len(req.Files)).Msg("stream started")

	records := h.serializer.Stream(conv)
	for {
		line, err := records.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			reason := "encode"
			if ctx.Err() != nil {
				reason = "client_gone"
			}
			h.abort(span, log, reason, records, err)
			return
		}
		if _, err := c.Writer.Write(line.Bytes); err != nil {
			h.abort(span, log, "write", records, err)
			return
		}
		c.Writer.Flush()
		metrics.RecordStreamRecord(line.Class)
	}

	h.tracer.Finish(span, records.Emitted(), "", nil)
	log.Debug().Int("records", records.Emitted()).Msg("stream completed")
}

func (h *StreamHandler) abort(span trace.Span, log zerolog.Logger, reason string, records *stream.Stream, err error) {
	metrics.RecordStreamAbort(reason)
	h.tracer.Finish(span, records.Emitted(), reason, err)

	event := log.Error()
	if reason == "client_gone" {
		event = log.Info()
	}
	event.Err(err).
		Str("reason", reason).
		Int("records", records.Emitted()).
		Int("total", records.Len()).
		Msg("stream aborted")
}
