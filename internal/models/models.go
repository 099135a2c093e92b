package models

import "github.com/shopspring/decimal"

func init() {
	// INR amounts must serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// PredictionRequest is the inbound payload on POST /predict.
type PredictionRequest struct {
	Specs string `json:"specs"`
}

// PriceRange is the expected market price band in INR.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// PredictionResult is the sanitized price estimate relayed back to the caller.
// PredictedPriceINR and RangeINR are pointers so that their absence in the
// upstream completion is detectable before the result is accepted.
type PredictionResult struct {
	PredictedPriceINR  *decimal.Decimal  `json:"predicted_price_inr"`
	RangeINR           *PriceRange       `json:"range_inr"`
	Confidence         float64           `json:"confidence"`
	Product            string            `json:"product"`
	Category           string            `json:"category"`
	SpecsExtracted     map[string]string `json:"specs_extracted"`
	ExplanationBullets []string          `json:"explanation_bullets"`
	Anomalies          []string          `json:"anomalies"`
	MarketSources      []string          `json:"market_sources"`
	LastUpdated        string            `json:"last_updated"`
}

// ErrorEnvelope is the JSON body returned for every failed request.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
