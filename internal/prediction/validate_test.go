package prediction

import (
	"strings"
	"testing"

	"github.com/KAVYA-29-ai/ecommerce/internal/models"
)

func TestValidateSpecs(t *testing.T) {
	tests := []struct {
		name     string
		specs    string
		max      int
		wantCode models.Code
		wantOut  string
	}{
		{"valid", "iPhone 14 Pro 256GB", 2000, "", "iPhone 14 Pro 256GB"},
		{"trims whitespace", "  Dell XPS 13  ", 2000, "", "Dell XPS 13"},
		{"empty", "", 2000, models.CodeMissingSpecs, ""},
		{"whitespace only", "   \t\n  ", 2000, models.CodeMissingSpecs, ""},
		{"too long", strings.Repeat("x", 2001), 2000, models.CodeSpecsTooLong, ""},
		{"exactly at limit", strings.Repeat("x", 2000), 2000, "", strings.Repeat("x", 2000)},
		{"limit counts trimmed length", "  " + strings.Repeat("x", 2000) + "  ", 2000, "", strings.Repeat("x", 2000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, perr := ValidateSpecs(tt.specs, tt.max)

			if tt.wantCode == "" {
				if perr != nil {
					t.Fatalf("Expected success, got error: %v", perr)
				}
				if out != tt.wantOut {
					t.Errorf("Expected output %q, got %q", tt.wantOut, out)
				}
				return
			}

			if perr == nil {
				t.Fatal("Expected error, got success")
			}
			if perr.Code != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, perr.Code)
			}
			if perr.Status != 400 {
				t.Errorf("Expected status 400, got %d", perr.Status)
			}
			if perr.Details != "" {
				t.Errorf("Validation errors must not carry details, got %q", perr.Details)
			}
		})
	}
}

func TestValidateSpecs_MultibyteLength(t *testing.T) {
	// 10 three-byte runes must count as 10 characters, not 30.
	specs := strings.Repeat("₹", 10)
	if _, perr := ValidateSpecs(specs, 10); perr != nil {
		t.Errorf("Expected 10 runes to pass a limit of 10, got %v", perr)
	}
	if _, perr := ValidateSpecs(specs, 9); perr == nil {
		t.Error("Expected 10 runes to fail a limit of 9")
	}
}
