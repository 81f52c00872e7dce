package conversation

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples_Shape(t *testing.T) {
	convs := Examples()
	require.Len(t, convs, 3)

	assert.Len(t, convs[0].Events, 24)
	assert.Len(t, convs[1].Events, 100)
	assert.Len(t, convs[2].Events, 9)

	for _, ev := range convs[0].Events {
		assert.Equal(t, 40*time.Millisecond, ev.Delay)
		assert.Equal(t, KindTextChunk, ev.Item.Kind())
	}
	for _, ev := range convs[1].Events {
		assert.Equal(t, 30*time.Millisecond, ev.Delay)
	}
}

func TestExamples_IntroReadsAsSentence(t *testing.T) {
	var b strings.Builder
	for _, ev := range Examples()[0].Events {
		b.WriteString(ev.Item.(TextChunk).Content)
	}
	assert.Equal(t, "Hi, Chatbot UI is a dependency free UI you can use in your projects. It is licensed under the MIT License.", b.String())
}

func TestExamples_ToolsScriptKinds(t *testing.T) {
	events := Examples()[2].Events

	want := []Kind{
		KindTextChunk,
		KindToolResult,
		KindTextChunk, KindTextChunk, KindTextChunk, KindTextChunk,
		KindToolResult,
		KindImageResult,
		KindDocument,
	}
	got := make([]Kind, 0, len(events))
	for _, ev := range events {
		got = append(got, ev.Item.Kind())
	}
	assert.Equal(t, want, got)

	img, ok := events[7].Item.(ImageResult)
	require.True(t, ok)
	raw, err := base64.StdEncoding.DecodeString(img.Content)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "\x89PNG"))

	doc, ok := events[8].Item.(DocumentResult)
	require.True(t, ok)
	assert.Equal(t, 12000, len(doc.Content))
	assert.Equal(t, "📄", doc.Icon)
}

func TestConversation_TotalDelay(t *testing.T) {
	conv := Conversation{Events: []TimedEvent{
		EventAfter(Seconds(0.5), TextChunk{}),
		Event(TextChunk{}),
		EventAfter(0, HideSignal{MessageItemID: 1}),
	}}
	assert.Equal(t, 540*time.Millisecond, conv.TotalDelay())
}
