package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KAVYA-29-ai/ecommerce/internal/models"
)

func testClient(serverURL string) *Client {
	return &Client{
		apiKey: "test_key",
		url:    serverURL,
		httpc:  http.DefaultClient,
	}
}

func geminiEnvelope(text string) string {
	env := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	}
	b, _ := json.Marshal(env)
	return string(b)
}

func TestComplete_ExtractsGeneratedText(t *testing.T) {
	var captured GenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test_key" {
			t.Error("Expected API key as query parameter")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Undecodable request payload: %v", err)
		}
		w.Write([]byte(geminiEnvelope(`{"predicted_price_inr": 1000}`)))
	}))
	defer server.Close()

	text, err := testClient(server.URL).Complete(context.Background(), "Samsung Galaxy S24")
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if text != `{"predicted_price_inr": 1000}` {
		t.Errorf("Unexpected generated text: %s", text)
	}

	if captured.SystemInstruction == nil || !strings.Contains(captured.SystemInstruction.Parts[0].Text, "Indian consumer market") {
		t.Error("Expected system instruction describing the Indian-market analyst role")
	}
	if len(captured.Contents) != 1 || !strings.Contains(captured.Contents[0].Parts[0].Text, "Samsung Galaxy S24") {
		t.Error("Expected user prompt to embed the specs")
	}
	if captured.GenerationConfig == nil || captured.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Error("Expected forced JSON output mode")
	}
	if captured.GenerationConfig.ResponseSchema == nil {
		t.Error("Expected a declared response schema")
	}
}

func TestComplete_MissingAPIKey(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	c := testClient(server.URL)
	c.apiKey = ""

	_, err := c.Complete(context.Background(), "anything")
	perr := models.AsError(err)
	if perr.Code != models.CodeConfigurationError {
		t.Errorf("Expected ConfigurationError, got %s", perr.Code)
	}
	if perr.Status != 500 {
		t.Errorf("Expected status 500, got %d", perr.Status)
	}
	if called {
		t.Error("Upstream must not be invoked without a credential")
	}
}

func TestComplete_UpstreamStatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantMessage string
	}{
		{"rate limited", http.StatusTooManyRequests, "too many requests"},
		{"forbidden", http.StatusForbidden, "restricted"},
		{"server error", http.StatusInternalServerError, "temporarily unavailable"},
		{"bad gateway", http.StatusBadGateway, "temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error": {"message": "upstream detail"}}`))
			}))
			defer server.Close()

			_, err := testClient(server.URL).Complete(context.Background(), "anything")
			if err == nil {
				t.Fatal("Expected error, got success")
			}

			perr := models.AsError(err)
			if perr.Code != models.CodeUpstreamError {
				t.Errorf("Expected UpstreamError, got %s", perr.Code)
			}
			if perr.Status != tt.status {
				t.Errorf("Expected upstream status %d to propagate, got %d", tt.status, perr.Status)
			}
			if !strings.Contains(perr.Message, tt.wantMessage) {
				t.Errorf("Expected message containing %q, got %q", tt.wantMessage, perr.Message)
			}
			if strings.Contains(perr.Message+perr.Details, "upstream detail") {
				t.Error("Upstream response body must not leak into the client-facing error")
			}
		})
	}
}

func TestComplete_EmptyCandidates(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{"candidates": []}`},
		{"no parts", `{"candidates": [{"content": {"parts": []}}]}`},
		{"empty text", geminiEnvelope("")},
		{"not json", `<html>gateway timeout</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := testClient(server.URL).Complete(context.Background(), "anything")
			perr := models.AsError(err)
			if perr.Code != models.CodeEmptyUpstreamResponse {
				t.Errorf("Expected EmptyUpstreamResponse, got %s", perr.Code)
			}
			if perr.Status != 500 {
				t.Errorf("Expected status 500, got %d", perr.Status)
			}
		})
	}
}

func TestBuildRequest_GroundingMode(t *testing.T) {
	req := BuildRequest("anything", true)

	if len(req.Tools) != 1 || req.Tools[0].GoogleSearch == nil {
		t.Error("Expected google_search tool in grounding mode")
	}
	if req.GenerationConfig.ResponseSchema != nil {
		t.Error("Schema must be omitted in grounding mode")
	}
	if req.GenerationConfig.ResponseMIMEType != "" {
		t.Error("Forced JSON mode must be omitted in grounding mode")
	}
}

func TestResponseSchema_Bounds(t *testing.T) {
	s := responseSchema()

	bullets := s.Properties["explanation_bullets"]
	if bullets == nil || bullets.MinItems != 3 || bullets.MaxItems != 8 {
		t.Error("explanation_bullets must be bounded to 3-8 items")
	}

	rng := s.Properties["range_inr"]
	if rng == nil || len(rng.Required) != 2 {
		t.Error("range_inr must require min and max")
	}

	for _, field := range []string{"predicted_price_inr", "range_inr", "product"} {
		found := false
		for _, r := range s.Required {
			if r == field {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected %s to be required in the schema", field)
		}
	}
}
