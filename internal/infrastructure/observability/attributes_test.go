package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestWithConversationAttrs(t *testing.T) {
	attrs := WithConversationAttrs(2, "tools", 9)
	assert.Contains(t, attrs, attribute.Int(AttrConversationIndex, 2))
	assert.Contains(t, attrs, attribute.Int(AttrConversationEvents, 9))
	assert.Contains(t, attrs, attribute.String(AttrConversationName, "tools"))

	assert.Len(t, WithConversationAttrs(0, "", 1), 2)
}

func TestWithStreamResult(t *testing.T) {
	assert.Equal(t, []attribute.KeyValue{attribute.Int(AttrStreamRecords, 3)}, WithStreamResult(3, ""))
	assert.Contains(t, WithStreamResult(1, "client_gone"), attribute.String(AttrStreamAbortReason, "client_gone"))
}
