package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/KAVYA-29-ai/ecommerce/internal/models"
)

// Completer produces a raw text completion for the given product specs.
// The prediction service depends on this interface so tests can substitute
// the live Gemini client.
type Completer interface {
	Complete(ctx context.Context, specs string) (string, error)
}

// Client calls the Gemini generateContent REST endpoint.
type Client struct {
	apiKey    string
	url       string
	grounding bool
	httpc     *http.Client
}

// NewClient builds a Gemini client for the given model. An empty apiKey is
// tolerated here; Complete reports it as a configuration error per request.
func NewClient(apiKey, model string, grounding bool) *Client {
	return &Client{
		apiKey:    apiKey,
		url:       fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", model),
		grounding: grounding,
		httpc:     &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete sends the specs to Gemini and returns the generated text.
// All failures come back as *models.Error; the credential value is never
// included in any error or log line.
func (c *Client) Complete(ctx context.Context, specs string) (string, error) {
	if c.apiKey == "" {
		return "", models.NewError(models.CodeConfigurationError, http.StatusInternalServerError,
			"prediction service is not configured")
	}

	payload, err := json.Marshal(BuildRequest(specs, c.grounding))
	if err != nil {
		return "", models.NewError(models.CodeUpstreamError, http.StatusInternalServerError,
			"prediction service temporarily unavailable")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"?key="+c.apiKey, bytes.NewBuffer(payload))
	if err != nil {
		return "", models.NewError(models.CodeUpstreamError, http.StatusInternalServerError,
			"prediction service temporarily unavailable")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Printf("AI Error: request failed: %v", err)
		return "", models.NewError(models.CodeUpstreamError, http.StatusInternalServerError,
			"prediction service temporarily unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("AI Error: upstream status %d: %s", resp.StatusCode, string(body))
		return "", upstreamError(resp.StatusCode)
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("AI Error: undecodable response envelope: %v", err)
		return "", models.NewError(models.CodeEmptyUpstreamResponse, http.StatusInternalServerError,
			"AI service returned an empty response")
	}

	text := result.text()
	if text == "" {
		return "", models.NewError(models.CodeEmptyUpstreamResponse, http.StatusInternalServerError,
			"AI service returned an empty response")
	}
	return text, nil
}

// text extracts candidates[0].content.parts[0].text, or "" when absent.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}

// upstreamError maps a non-success Gemini status to a user-facing error,
// carrying the upstream status through to the gateway response.
func upstreamError(status int) *models.Error {
	var msg string
	switch status {
	case http.StatusTooManyRequests:
		msg = "too many requests, please try again in a moment"
	case http.StatusForbidden:
		msg = "access to the prediction service is restricted"
	default:
		msg = "prediction service temporarily unavailable"
	}
	return models.NewError(models.CodeUpstreamError, status, msg)
}
