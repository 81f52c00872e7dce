package conversation

// Kind identifies a message item variant.
type Kind int

const (
	KindTextChunk Kind = iota + 1
	KindToolResult
	KindImageResult
	KindDocument
	KindDeleteSignal
	KindHideSignal
)

// Item type values understood by the chat UI.
const (
	ItemTypeText     = "text"
	ItemTypeTool     = "tool"
	ItemTypeB64Image = "b64image"
)

// Item is a single record of a scripted assistant reply. Each variant carries
// only its own fields.
type Item interface {
	Kind() Kind
}

// TextChunk is a piece of text appended to the message item with the same ID.
type TextChunk struct {
	Content       string
	MessageItemID int
}

// ToolResult is a complete tool output rendered as its own message item.
type ToolResult struct {
	Name          string
	Content       string
	MessageItemID int
}

// ImageResult is a base64 encoded image rendered as its own message item.
type ImageResult struct {
	Content       string
	MessageItemID int
}

// DocumentResult is handed to the frontend's document callback instead of the
// message list, so it has no message item ID.
type DocumentResult struct {
	Title   string
	Content string
	Icon    string
}

// DeleteSignal asks the frontend to remove a message item.
type DeleteSignal struct {
	MessageItemID int
}

// HideSignal asks the frontend to hide a message item.
type HideSignal struct {
	MessageItemID int
}

func (TextChunk) Kind() Kind      { return KindTextChunk }
func (ToolResult) Kind() Kind     { return KindToolResult }
func (ImageResult) Kind() Kind    { return KindImageResult }
func (DocumentResult) Kind() Kind { return KindDocument }
func (DeleteSignal) Kind() Kind   { return KindDeleteSignal }
func (HideSignal) Kind() Kind     { return KindHideSignal }
