package prediction

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/KAVYA-29-ai/ecommerce/internal/models"
)

// rawExcerptLimit caps how much of a malformed completion is echoed back in
// error details.
const rawExcerptLimit = 200

// Sanitize parses the generated completion text and enforces the result
// contract: required fields present, prices non-negative and ordered,
// last_updated injected when the model omitted it.
func Sanitize(raw string, now func() time.Time) (*models.PredictionResult, *models.Error) {
	var result models.PredictionResult
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &result); err != nil {
		return nil, models.NewError(models.CodeMalformedAIJSON, http.StatusInternalServerError,
			"AI service returned malformed JSON").WithDetails(excerpt(raw, rawExcerptLimit))
	}

	if result.PredictedPriceINR == nil || result.RangeINR == nil || result.Product == "" {
		return nil, models.NewError(models.CodeIncompleteAIResult, http.StatusInternalServerError,
			"AI response is missing required fields")
	}

	if result.PredictedPriceINR.IsNegative() || result.RangeINR.Min.IsNegative() || result.RangeINR.Max.IsNegative() ||
		result.RangeINR.Min.GreaterThan(result.RangeINR.Max) {
		return nil, models.NewError(models.CodeInvalidPriceValue, http.StatusInternalServerError,
			"AI response contains an invalid price value")
	}

	if result.LastUpdated == "" {
		result.LastUpdated = now().UTC().Format(time.RFC3339)
	}

	// Empty collections serialize as [] / {} rather than null.
	if result.SpecsExtracted == nil {
		result.SpecsExtracted = map[string]string{}
	}
	if result.ExplanationBullets == nil {
		result.ExplanationBullets = []string{}
	}
	if result.Anomalies == nil {
		result.Anomalies = []string{}
	}
	if result.MarketSources == nil {
		result.MarketSources = []string{}
	}

	return &result, nil
}

// stripCodeFence removes a surrounding markdown fence. Grounded completions
// cannot use forced JSON output mode, so the model occasionally wraps its
// answer in ```json fences.
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

// excerpt returns at most limit characters of s.
func excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
