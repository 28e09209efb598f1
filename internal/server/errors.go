// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
)

// ErrGeneratorDisabled is returned by generator-backed endpoints when no API key is configured.
var ErrGeneratorDisabled = errors.New("generator not configured")

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Error codes returned in the "error" field of failed responses
const (
	CodeInvalidRequest        = "invalid_request"
	CodePayloadTooLarge       = "payload_too_large"
	CodeUnsupportedMedia      = "unsupported_media_type"
	CodeUnprocessableDocument = "unprocessable_document"
	CodeUpstreamUnavailable   = "upstream_unavailable"
	CodeGeneratorUnavailable  = "generator_unavailable"
	CodeInternal              = "internal_error"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	status, _ := classify(err)
	return status
}

// ErrorCode returns the machine-readable code for an error
func ErrorCode(err error) string {
	_, code := classify(err)
	return code
}

func classify(err error) (int, string) {
	var validation *ErrValidation
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &validation), errors.Is(err, analysis.ErrEmptyInput):
		return http.StatusBadRequest, CodeInvalidRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, CodePayloadTooLarge
	case errors.Is(err, ingestion.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, CodeUnsupportedMedia
	case errors.Is(err, ingestion.ErrUnreadable), errors.Is(err, ingestion.ErrNoText):
		return http.StatusUnprocessableEntity, CodeUnprocessableDocument
	case errors.Is(err, analysis.ErrUpstreamUnavailable):
		return http.StatusBadGateway, CodeUpstreamUnavailable
	case errors.Is(err, ErrGeneratorDisabled):
		return http.StatusServiceUnavailable, CodeGeneratorUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
