// Package scripts loads scripted conversations from YAML files.
package scripts

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/janhq/chat-demo-api/internal/domain/conversation"
)

// Event kinds accepted in script files.
const (
	KindText     = "text"
	KindTool     = "tool"
	KindB64Image = "b64image"
	KindDocument = "document"
	KindDelete   = "delete"
	KindHide     = "hide"
)

// ErrInvalidScript wraps every validation failure of a script file.
var ErrInvalidScript = errors.New("invalid conversation script")

// defaultMessageItemID mirrors the frontend's fallback for a missing ID.
const defaultMessageItemID = -1

type scriptFile struct {
	Conversations []conversationDoc `yaml:"conversations"`
}

type conversationDoc struct {
	Name   string     `yaml:"name"`
	Events []eventDoc `yaml:"events"`
}

type eventDoc struct {
	Kind          string   `yaml:"kind"`
	Sleep         *float64 `yaml:"sleep"`
	Content       string   `yaml:"content"`
	Repeat        int      `yaml:"repeat"`
	Chunks        []string `yaml:"chunks"`
	MessageItemID *int     `yaml:"messageItemID"`
	Name          string   `yaml:"name"`
	Title         string   `yaml:"title"`
	Icon          string   `yaml:"icon"`
}

// LoadFile reads conversations from a YAML script file.
func LoadFile(path string, defaultDelay time.Duration) ([]conversation.Conversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read conversation script: %w", err)
	}
	convs, err := Parse(data, defaultDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return convs, nil
}

// Parse decodes conversations from YAML. Events without a sleep value use
// defaultDelay.
func Parse(data []byte, defaultDelay time.Duration) ([]conversation.Conversation, error) {
	var doc scriptFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if len(doc.Conversations) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, conversation.ErrNoConversations)
	}

	out := make([]conversation.Conversation, 0, len(doc.Conversations))
	for i, c := range doc.Conversations {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			name = fmt.Sprintf("conversation-%d", i)
		}
		if len(c.Events) == 0 {
			return nil, fmt.Errorf("%w: conversation %q has no events", ErrInvalidScript, name)
		}

		events := make([]conversation.TimedEvent, 0, len(c.Events))
		for j, ev := range c.Events {
			converted, err := ev.toEvents(defaultDelay)
			if err != nil {
				return nil, fmt.Errorf("%w: conversation %q event %d: %w", ErrInvalidScript, name, j, err)
			}
			events = append(events, converted...)
		}
		out = append(out, conversation.Conversation{Name: name, Events: events})
	}
	return out, nil
}

func (e eventDoc) toEvents(defaultDelay time.Duration) ([]conversation.TimedEvent, error) {
	delay := defaultDelay
	if e.Sleep != nil {
		if *e.Sleep < 0 {
			return nil, fmt.Errorf("sleep must not be negative")
		}
		delay = conversation.Seconds(*e.Sleep)
	}
	if e.Repeat < 0 {
		return nil, fmt.Errorf("repeat must not be negative")
	}

	content := e.Content
	if e.Repeat > 0 {
		content = strings.Repeat(content, e.Repeat)
	}
	id := defaultMessageItemID
	if e.MessageItemID != nil {
		id = *e.MessageItemID
	}

	kind := strings.ToLower(strings.TrimSpace(e.Kind))
	if len(e.Chunks) > 0 && kind != KindText {
		return nil, fmt.Errorf("chunks are only allowed on %s events", KindText)
	}

	var item conversation.Item
	switch kind {
	case KindText:
		if len(e.Chunks) > 0 {
			events := make([]conversation.TimedEvent, 0, len(e.Chunks))
			for _, chunk := range e.Chunks {
				events = append(events, conversation.EventAfter(delay, conversation.TextChunk{Content: chunk, MessageItemID: id}))
			}
			return events, nil
		}
		item = conversation.TextChunk{Content: content, MessageItemID: id}
	case KindTool:
		name := e.Name
		if name == "" {
			name = "N/A"
		}
		item = conversation.ToolResult{Name: name, Content: content, MessageItemID: id}
	case KindB64Image:
		item = conversation.ImageResult{Content: content, MessageItemID: id}
	case KindDocument:
		item = conversation.DocumentResult{Title: e.Title, Content: content, Icon: e.Icon}
	case KindDelete:
		item = conversation.DeleteSignal{MessageItemID: id}
	case KindHide:
		item = conversation.HideSignal{MessageItemID: id}
	case "":
		return nil, fmt.Errorf("kind is required")
	default:
		return nil, fmt.Errorf("unknown kind %q", e.Kind)
	}
	return []conversation.TimedEvent{conversation.EventAfter(delay, item)}, nil
}
