package ai

import "fmt"

const systemInstruction = `You are an expert price analyst for the Indian consumer market.
Given a product description, estimate its current fair market price in Indian Rupees (INR).
Weigh these pricing factors:
- Product condition (new, refurbished, used)
- Brand positioning and reputation in India
- Current demand and supply trends
- Seasonality (festive sales, launch cycles)
- Import duties and GST where applicable
- Currency conversion for imported goods
- Regional price variance across Indian cities
Respond with a single JSON object and nothing else.`

// buildUserPrompt embeds the normalized specs into the analysis instruction.
func buildUserPrompt(specs string) string {
	return fmt.Sprintf(`Predict the market price in INR for the following product.

Product description:
%s

Return a JSON object with these fields: predicted_price_inr (number), range_inr (object with min and max numbers), confidence (number between 0 and 1), product (string), category (string), specs_extracted (object of string key-value pairs), explanation_bullets (array of 3 to 8 strings), anomalies (array of strings, may be empty), market_sources (array of strings), last_updated (ISO-8601 timestamp).`, specs)
}

// responseSchema declares the strict output shape enforced in schema mode.
func responseSchema() *Schema {
	number := func(desc string) *Schema { return &Schema{Type: "NUMBER", Description: desc} }
	stringArray := func(desc string, min, max int) *Schema {
		return &Schema{Type: "ARRAY", Description: desc, Items: &Schema{Type: "STRING"}, MinItems: min, MaxItems: max}
	}

	return &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"predicted_price_inr": number("Estimated fair market price in INR, non-negative"),
			"range_inr": {
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"min": number("Lower bound of the price range in INR"),
					"max": number("Upper bound of the price range in INR"),
				},
				Required: []string{"min", "max"},
			},
			"confidence":          number("Confidence in the estimate, between 0 and 1"),
			"product":             {Type: "STRING", Description: "Canonical product name"},
			"category":            {Type: "STRING", Description: "Product category"},
			"specs_extracted":     {Type: "OBJECT", Description: "Key-value pairs of specification attributes extracted from the description"},
			"explanation_bullets": stringArray("Reasoning behind the estimate", 3, 8),
			"anomalies":           stringArray("Suspicious or inconsistent details in the description", 0, 0),
			"market_sources":      stringArray("Market references consulted", 0, 0),
			"last_updated":        {Type: "STRING", Description: "ISO-8601 timestamp of the estimate"},
		},
		Required: []string{
			"predicted_price_inr", "range_inr", "confidence", "product",
			"category", "explanation_bullets",
		},
	}
}

// BuildRequest assembles the outbound Gemini payload for the given specs.
// Pure data transformation, no I/O.
//
// Search grounding and a declared response schema are mutually exclusive on
// the Gemini API, so grounded requests rely on the prompt alone to force
// JSON output.
func BuildRequest(specs string, grounding bool) *GenerateRequest {
	req := &GenerateRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: systemInstruction}}},
		Contents:          []Content{{Parts: []Part{{Text: buildUserPrompt(specs)}}}},
		GenerationConfig: &GenerationConfig{
			Temperature:     0.2,
			MaxOutputTokens: 2048,
		},
	}

	if grounding {
		req.Tools = []Tool{{GoogleSearch: &struct{}{}}}
	} else {
		req.GenerationConfig.ResponseMIMEType = "application/json"
		req.GenerationConfig.ResponseSchema = responseSchema()
	}

	return req
}
