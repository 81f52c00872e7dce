package observability

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/chat-demo-api/internal/config"
)

// TracerName is the instrumentation scope used by the service's own spans.
const TracerName = "github.com/janhq/chat-demo-api"

// StreamSpanName names the span covering one scripted stream.
const StreamSpanName = "chat.stream"

// Shutdown flushes and releases the tracer provider.
type Shutdown func(ctx context.Context) error

// Setup installs the OTLP tracer provider when tracing is enabled. The global
// no-op provider stays in place otherwise.
func Setup(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Shutdown, error) {
	if !cfg.EnableTracing || cfg.OTLPEndpoint == "" {
		log.Info().Msg("Tracing disabled")
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp trace exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(ResourceAttrs(cfg)...))
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info().Str("endpoint", cfg.OTLPEndpoint).Msg("Tracing enabled")
	return tp.Shutdown, nil
}

// ResourceAttrs describes this deployment of the chat demo.
func ResourceAttrs(cfg *config.Config) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.Environment),
		attribute.String(AttrBotName, cfg.BotName),
	}
	if cfg.ConversationsFile != "" {
		attrs = append(attrs, attribute.String(AttrConversationSource, cfg.ConversationsFile))
	}
	return attrs
}

// StreamTracer starts and finishes stream spans.
type StreamTracer struct {
	tracer trace.Tracer
}

// NewStreamTracer uses the global tracer provider.
func NewStreamTracer() *StreamTracer {
	return NewStreamTracerFrom(otel.GetTracerProvider())
}

// NewStreamTracerFrom uses the given provider.
func NewStreamTracerFrom(tp trace.TracerProvider) *StreamTracer {
	return &StreamTracer{tracer: tp.Tracer(TracerName)}
}

// Start opens the span for a stream of the selected conversation.
func (t *StreamTracer) Start(ctx context.Context, index int, name string, events, files int) (context.Context, trace.Span) {
	attrs := WithConversationAttrs(index, name, events)
	attrs = append(attrs, attribute.Int(AttrRequestFiles, files))
	return t.tracer.Start(ctx, StreamSpanName, trace.WithAttributes(attrs...))
}

// Finish records the outcome and ends the span. An empty reason means the
// stream ran to completion.
func (t *StreamTracer) Finish(span trace.Span, records int, reason string, err error) {
	span.SetAttributes(WithStreamResult(records, reason)...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
	}
	span.End()
}
