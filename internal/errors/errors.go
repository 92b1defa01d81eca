// Package errors provides the uniform error record returned by every PokeAPI tool.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies the cause of an APIError. It is not part of the wire record.
type Kind int

const (
	KindUnexpected Kind = iota // request construction, malformed payloads, anything unclassified
	KindStatus                 // upstream answered with a 4xx/5xx status
	KindTransport              // DNS, connection, timeout or body read failures
	KindProcessing             // the upstream document did not have the expected shape
	KindNotFound               // an expected attribute was missing from an otherwise valid document
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindTransport:
		return "transport"
	case KindProcessing:
		return "processing"
	case KindNotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

// APIError is the single error shape surfaced to tool callers.
// It marshals to {"error": ..., "details": ..., "name": ...}.
type APIError struct {
	Message string `json:"error"`
	Details string `json:"details"`
	Name    string `json:"name,omitempty"` // best-effort creature name for missing species attributes

	Kind       Kind `json:"-"`
	StatusCode int  `json:"-"` // upstream status, only set for KindStatus
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	if e.Name != "" {
		return fmt.Sprintf("%s (name: %s)", e.Message, e.Name)
	}
	return e.Message
}

// Code returns a short label suitable for metrics.
func (e *APIError) Code() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("http_%d", e.StatusCode)
	}
	return e.Kind.String()
}

// NewStatusError reports an upstream 4xx/5xx response. body is the raw response text.
func NewStatusError(statusCode int, body string) *APIError {
	return &APIError{
		Message:    fmt.Sprintf("API request failed with status %d", statusCode),
		Details:    body,
		Kind:       KindStatus,
		StatusCode: statusCode,
	}
}

// NewTransportError reports a failure to reach the upstream API.
func NewTransportError(cause error) *APIError {
	return &APIError{
		Message: "API request error",
		Details: causeText(cause),
		Kind:    KindTransport,
	}
}

// NewUnexpectedError reports any failure that is neither a status nor a transport error.
func NewUnexpectedError(cause error) *APIError {
	return &APIError{
		Message: "An unexpected error occurred",
		Details: causeText(cause),
		Kind:    KindUnexpected,
	}
}

// NewProcessingError reports an upstream document that could not be reshaped.
// domain names what was being processed, e.g. "Pokémon" or "item list".
func NewProcessingError(domain string, cause error) *APIError {
	return &APIError{
		Message: fmt.Sprintf("Failed to process %s data", domain),
		Details: causeText(cause),
		Kind:    KindProcessing,
	}
}

// NewNotFoundError reports a missing attribute. name is whatever creature name was resolved.
func NewNotFoundError(message, name string) *APIError {
	return &APIError{
		Message: message,
		Name:    name,
		Kind:    KindNotFound,
	}
}

// As returns the APIError in err's chain, if any.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Wrap returns err as an APIError, classifying unknown errors as unexpected.
func Wrap(err error) *APIError {
	if err == nil {
		return nil
	}
	if apiErr, ok := As(err); ok {
		return apiErr
	}
	return NewUnexpectedError(err)
}

// IsNotFound returns true if err is an upstream 404.
func IsNotFound(err error) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == KindStatus && apiErr.StatusCode == http.StatusNotFound
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
