package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KAVYA-29-ai/ecommerce/internal/models"
	"github.com/KAVYA-29-ai/ecommerce/internal/prediction"
)

// PredictHandler exposes the prediction pipeline over HTTP.
type PredictHandler struct {
	service prediction.Service
}

func NewPredictHandler(service prediction.Service) *PredictHandler {
	return &PredictHandler{service: service}
}

// Predict handles POST /predict.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		perr := classifyBindError(err)
		c.JSON(perr.Status, perr.Envelope())
		return
	}

	result, perr := h.service.Predict(c.Request.Context(), req.Specs)
	if perr != nil {
		if perr.Status >= http.StatusInternalServerError {
			log.Printf("Prediction failed: %v", perr)
		}
		c.JSON(perr.Status, perr.Envelope())
		return
	}

	c.JSON(http.StatusOK, result)
}

// classifyBindError separates a body that is not JSON at all from a body
// whose specs field has the wrong type. Mirrors the validator contract:
// unparseable → InvalidJson, wrong type → MissingSpecs.
func classifyBindError(err error) *models.Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return models.NewError(models.CodeMissingSpecs, http.StatusBadRequest,
			"specs is required and must be a non-empty string")
	}
	return models.NewError(models.CodeInvalidJSON, http.StatusBadRequest,
		"request body is not valid JSON")
}
