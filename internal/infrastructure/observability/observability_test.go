package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/janhq/chat-demo-api/internal/config"
)

func TestSetup_DisabledIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), &config.Config{EnableTracing: true}, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestResourceAttrs(t *testing.T) {
	cfg := &config.Config{ServiceName: "chat-demo-api", Environment: "test", BotName: "ExampleBot"}
	attrs := ResourceAttrs(cfg)
	assert.Contains(t, attrs, attribute.String(AttrBotName, "ExampleBot"))
	assert.Len(t, attrs, 3)

	cfg.ConversationsFile = "configs/conversations.yaml"
	assert.Contains(t, ResourceAttrs(cfg), attribute.String(AttrConversationSource, "configs/conversations.yaml"))
}

func TestStreamTracer_RecordsOutcome(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := NewStreamTracerFrom(tp)

	_, span := tracer.Start(context.Background(), 2, "tools", 9, 1)
	tracer.Finish(span, 9, "", nil)

	_, span = tracer.Start(context.Background(), 0, "intro", 24, 0)
	tracer.Finish(span, 3, "client_gone", errors.New("context canceled"))

	ended := recorder.Ended()
	require.Len(t, ended, 2)

	ok := ended[0]
	assert.Equal(t, StreamSpanName, ok.Name())
	assert.Contains(t, ok.Attributes(), attribute.Int(AttrConversationIndex, 2))
	assert.Contains(t, ok.Attributes(), attribute.Int(AttrRequestFiles, 1))
	assert.Contains(t, ok.Attributes(), attribute.Int(AttrStreamRecords, 9))
	assert.Equal(t, codes.Unset, ok.Status().Code)

	aborted := ended[1]
	assert.Contains(t, aborted.Attributes(), attribute.String(AttrStreamAbortReason, "client_gone"))
	assert.Equal(t, codes.Error, aborted.Status().Code)
	assert.Len(t, aborted.Events(), 1)
}
