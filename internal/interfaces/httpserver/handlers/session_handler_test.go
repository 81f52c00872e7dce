package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/janhq/chat-demo-api/internal/domain/conversation"
)

func TestSessionHandler_Start(t *testing.T) {
	router := setupTestRouter(&fixedSelector{conv: conversation.Examples()[0]}, 1024)

	var sessions []map[string]interface{}
	for _, method := range []string{http.MethodPost, http.MethodGet, http.MethodPost} {
		req, _ := http.NewRequest(method, "/session", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", method, w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to parse response: %v", err)
		}
		sessions = append(sessions, resp)
	}

	seen := map[string]bool{}
	for _, resp := range sessions {
		if len(resp) != 4 {
			t.Errorf("Expected 4 fields, got %v", resp)
		}
		if resp["name"] != "ExampleBot" {
			t.Errorf("Expected name ExampleBot, got %v", resp["name"])
		}
		if resp["multiTurn"] != true || resp["fileSupport"] != true {
			t.Errorf("Expected both feature flags, got %v", resp)
		}
		id, _ := resp["session"].(string)
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("Expected a uuid session, got %q", id)
		}
		if seen[id] {
			t.Errorf("Session id %q returned twice", id)
		}
		seen[id] = true
	}
}
