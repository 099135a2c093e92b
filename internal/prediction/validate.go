package prediction

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/KAVYA-29-ai/ecommerce/internal/models"
)

// ValidateSpecs normalizes the caller-supplied product description.
// Length limits apply to the trimmed value, counted in characters.
func ValidateSpecs(specs string, maxLength int) (string, *models.Error) {
	trimmed := strings.TrimSpace(specs)
	if trimmed == "" {
		return "", models.NewError(models.CodeMissingSpecs, http.StatusBadRequest,
			"specs is required and must be a non-empty string")
	}
	if utf8.RuneCountInString(trimmed) > maxLength {
		return "", models.NewError(models.CodeSpecsTooLong, http.StatusBadRequest,
			"specs exceeds the maximum allowed length")
	}
	return trimmed, nil
}
