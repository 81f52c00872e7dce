package observability

import (
	"go.opentelemetry.io/otel/attribute"
)

// Standard attribute keys
const (
	AttrConversationIndex  = "conversation.index"
	AttrConversationName   = "conversation.name"
	AttrConversationEvents = "conversation.events"
	AttrRequestFiles       = "request.files"
	AttrStreamRecords      = "stream.records"
	AttrStreamAbortReason  = "stream.abort_reason"
	AttrBotName            = "chat.bot_name"
	AttrConversationSource = "chat.conversation_source"
)

// WithConversationAttrs returns the attributes describing the selected script.
func WithConversationAttrs(index int, name string, events int) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.Int(AttrConversationIndex, index),
		attribute.Int(AttrConversationEvents, events),
	}
	if name != "" {
		attrs = append(attrs, attribute.String(AttrConversationName, name))
	}
	return attrs
}

// WithStreamResult returns the attributes recorded when a stream ends.
func WithStreamResult(records int, abortReason string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.Int(AttrStreamRecords, records),
	}
	if abortReason != "" {
		attrs = append(attrs, attribute.String(AttrStreamAbortReason, abortReason))
	}
	return attrs
}
