package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAgentClientInvoke(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":  true,
			"response": map[string]string{"result": "{}"},
		})
	}))
	defer srv.Close()

	client := NewAgentClient(srv.URL+"/", "secret-key")
	result, err := client.Invoke(context.Background(), "Search ArXiv for the following topics: [Topology]. Mode: preview_only. Do NOT send email.", "agent-123")
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}

	if gotPath != "/agents/agent-123/invoke" {
		t.Errorf("Unexpected path: %s", gotPath)
	}
	if gotKey != "secret-key" {
		t.Errorf("Expected API key header, got %q", gotKey)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected JSON content type, got %q", gotContentType)
	}
	if gotBody["message"] == "" {
		t.Error("Expected instruction in message field")
	}

	if !result.Success {
		t.Error("Expected success envelope")
	}
	if len(result.Response) == 0 {
		t.Error("Expected opaque response payload preserved")
	}
}

func TestAgentClientInvokeNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewAgentClient(srv.URL, "")
	if _, err := client.Invoke(context.Background(), "hello", "agent-123"); err == nil {
		t.Fatal("Expected error for non-2xx status")
	}
}
