package stream

import (
	"github.com/invopop/jsonschema"
)

// Schemas describes the data object of every wire class.
func Schemas() map[string]*jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	item := r.Reflect(&MessageItemPayload{})
	return map[string]*jsonschema.Schema{
		ClassMessageItemResponseChunk: item,
		ClassMessageItemResponse:      item,
		ClassDocumentResponse:         r.Reflect(&DocumentPayload{}),
		ClassDeleteMessageItemSignal:  r.Reflect(&SignalPayload{}),
		ClassHideMessageItemSignal:    r.Reflect(&SignalPayload{}),
	}
}
