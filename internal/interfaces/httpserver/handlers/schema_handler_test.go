package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/janhq/chat-demo-api/internal/domain/conversation"
	"github.com/janhq/chat-demo-api/internal/domain/stream"
)

func TestSchemaHandler_Get(t *testing.T) {
	router := setupTestRouter(&fixedSelector{conv: conversation.Examples()[0]}, 1024)

	req, _ := http.NewRequest(http.MethodGet, "/schema", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp map[string]map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	for _, class := range []string{
		stream.ClassMessageItemResponseChunk,
		stream.ClassMessageItemResponse,
		stream.ClassDocumentResponse,
		stream.ClassDeleteMessageItemSignal,
		stream.ClassHideMessageItemSignal,
	} {
		schema, ok := resp[class]
		if !ok {
			t.Errorf("Expected a schema for %s", class)
			continue
		}
		if schema["type"] != "object" {
			t.Errorf("%s: expected an object schema, got %v", class, schema["type"])
		}
	}
}
