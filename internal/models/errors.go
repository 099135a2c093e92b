package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a failure class in the prediction pipeline.
type Code string

const (
	CodeInvalidJSON           Code = "InvalidJson"
	CodeMissingSpecs          Code = "MissingSpecs"
	CodeSpecsTooLong          Code = "SpecsTooLong"
	CodeMethodNotAllowed      Code = "MethodNotAllowed"
	CodeConfigurationError    Code = "ConfigurationError"
	CodeEmptyUpstreamResponse Code = "EmptyUpstreamResponse"
	CodeMalformedAIJSON       Code = "MalformedAiJson"
	CodeIncompleteAIResult    Code = "IncompleteAiResult"
	CodeInvalidPriceValue     Code = "InvalidPriceValue"
	CodeUpstreamError         Code = "UpstreamError"
)

// Error is the tagged failure threaded through every pipeline stage.
// Status is the HTTP status the gateway answers with; for upstream failures
// it carries the upstream status through.
type Error struct {
	Code    Code
	Status  int
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewError builds a pipeline error with the given classification.
func NewError(code Code, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// WithDetails attaches diagnostic detail. Only server-side parse failures
// should carry detail; validation failures never do.
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

// Envelope converts the error into the wire-level error body.
func (e *Error) Envelope() ErrorEnvelope {
	return ErrorEnvelope{Error: e.Message, Code: string(e.Code), Details: e.Details}
}

// AsError extracts a pipeline *Error from err, wrapping anything else into a
// generic 500 so the caller always gets a stable envelope.
func AsError(err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	return NewError(CodeUpstreamError, http.StatusInternalServerError, "prediction service temporarily unavailable")
}
