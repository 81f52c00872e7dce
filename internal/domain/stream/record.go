package stream

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/janhq/chat-demo-api/internal/domain/conversation"
)

// Wire class names read by the chat UI's response processor.
const (
	ClassMessageItemResponseChunk = "MessageItemResponseChunk"
	ClassMessageItemResponse      = "MessageItemResponse"
	ClassDocumentResponse         = "DocumentResponse"
	ClassDeleteMessageItemSignal  = "DeleteMessageItemSignal"
	ClassHideMessageItemSignal    = "HideMessageItemSignal"
)

// ErrUnknownItem is returned for items without a wire class.
var ErrUnknownItem = errors.New("unknown message item")

var classNames = map[conversation.Kind]string{
	conversation.KindTextChunk:    ClassMessageItemResponseChunk,
	conversation.KindToolResult:   ClassMessageItemResponse,
	conversation.KindImageResult:  ClassMessageItemResponse,
	conversation.KindDocument:     ClassDocumentResponse,
	conversation.KindDeleteSignal: ClassDeleteMessageItemSignal,
	conversation.KindHideSignal:   ClassHideMessageItemSignal,
}

// Record is one line of the stream.
type Record struct {
	Class string `json:"class"`
	Data  any    `json:"data"`
}

// MessageItemPayload is the data of MessageItemResponse and
// MessageItemResponseChunk records.
type MessageItemPayload struct {
	Type          string  `json:"type"`
	Content       string  `json:"content"`
	MessageItemID int     `json:"messageItemID"`
	Name          *string `json:"name,omitempty"`
}

// DocumentPayload is the data of DocumentResponse records.
type DocumentPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Icon    string `json:"icon"`
}

// SignalPayload is the data of delete and hide signals.
type SignalPayload struct {
	MessageItemID int `json:"messageItemID"`
}

// ClassOf returns the wire class of an item.
func ClassOf(item conversation.Item) (string, error) {
	if item == nil {
		return "", fmt.Errorf("%w: nil", ErrUnknownItem)
	}
	class, ok := classNames[item.Kind()]
	if !ok {
		return "", fmt.Errorf("%w: kind %d", ErrUnknownItem, item.Kind())
	}
	return class, nil
}

// NewRecord maps an item to its wire record.
func NewRecord(item conversation.Item) (Record, error) {
	class, err := ClassOf(item)
	if err != nil {
		return Record{}, err
	}

	var data any
	switch v := item.(type) {
	case conversation.TextChunk:
		data = MessageItemPayload{Type: conversation.ItemTypeText, Content: v.Content, MessageItemID: v.MessageItemID}
	case conversation.ToolResult:
		name := v.Name
		data = MessageItemPayload{Type: conversation.ItemTypeTool, Content: v.Content, MessageItemID: v.MessageItemID, Name: &name}
	case conversation.ImageResult:
		data = MessageItemPayload{Type: conversation.ItemTypeB64Image, Content: v.Content, MessageItemID: v.MessageItemID}
	case conversation.DocumentResult:
		data = DocumentPayload{Title: v.Title, Content: v.Content, Icon: v.Icon}
	case conversation.DeleteSignal:
		data = SignalPayload{MessageItemID: v.MessageItemID}
	case conversation.HideSignal:
		data = SignalPayload{MessageItemID: v.MessageItemID}
	default:
		return Record{}, fmt.Errorf("%w: %T", ErrUnknownItem, item)
	}
	return Record{Class: class, Data: data}, nil
}

// Line is one encoded record, newline included.
type Line struct {
	Class string
	Bytes []byte
}

// Encode returns the item as one complete newline terminated JSON line.
func Encode(item conversation.Item) ([]byte, error) {
	line, err := encodeLine(item)
	if err != nil {
		return nil, err
	}
	return line.Bytes, nil
}

func encodeLine(item conversation.Item) (Line, error) {
	record, err := NewRecord(item)
	if err != nil {
		return Line{}, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record); err != nil {
		return Line{}, fmt.Errorf("encode %s record: %w", record.Class, err)
	}
	return Line{Class: record.Class, Bytes: buf.Bytes()}, nil
}
