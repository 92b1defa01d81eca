package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "with details",
			err:      NewStatusError(404, "Not Found"),
			expected: "API request failed with status 404: Not Found",
		},
		{
			name:     "with name only",
			err:      NewNotFoundError("Color not found in species data", "pikachu"),
			expected: "Color not found in species data (name: pikachu)",
		},
		{
			name:     "message only",
			err:      &APIError{Message: "Species URL not found"},
			expected: "Species URL not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("APIError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name        string
		err         *APIError
		wantMessage string
		wantDetails string
		wantKind    Kind
	}{
		{"status", NewStatusError(500, "oops"), "API request failed with status 500", "oops", KindStatus},
		{"transport", NewTransportError(cause), "API request error", "boom", KindTransport},
		{"unexpected", NewUnexpectedError(cause), "An unexpected error occurred", "boom", KindUnexpected},
		{"processing", NewProcessingError("item list", cause), "Failed to process item list data", "boom", KindProcessing},
		{"nil cause", NewTransportError(nil), "API request error", "", KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMessage)
			}
			if tt.err.Details != tt.wantDetails {
				t.Errorf("Details = %q, want %q", tt.err.Details, tt.wantDetails)
			}
			if tt.err.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.wantKind)
			}
		})
	}
}

func TestAPIError_JSON(t *testing.T) {
	data, err := json.Marshal(NewStatusError(404, "Not Found"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got["error"] != "API request failed with status 404" {
		t.Errorf("error = %v", got["error"])
	}
	if got["details"] != "Not Found" {
		t.Errorf("details = %v", got["details"])
	}
	if _, ok := got["name"]; ok {
		t.Error("name should be omitted when empty")
	}
	if len(got) != 2 {
		t.Errorf("expected exactly error and details keys, got %v", got)
	}

	data, _ = json.Marshal(NewNotFoundError("Shape not found in species data", "ditto"))
	got = nil
	_ = json.Unmarshal(data, &got)
	if got["name"] != "ditto" {
		t.Errorf("name = %v, want ditto", got["name"])
	}
}

func TestCode(t *testing.T) {
	if got := NewStatusError(404, "").Code(); got != "http_404" {
		t.Errorf("Code() = %q, want http_404", got)
	}
	if got := NewTransportError(nil).Code(); got != "transport" {
		t.Errorf("Code() = %q, want transport", got)
	}
	if got := NewNotFoundError("x", "").Code(); got != "not_found" {
		t.Errorf("Code() = %q, want not_found", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NewStatusError(404, "")) {
		t.Error("IsNotFound should be true for 404")
	}
	if !IsNotFound(fmt.Errorf("wrapped: %w", NewStatusError(404, ""))) {
		t.Error("IsNotFound should unwrap")
	}
	if IsNotFound(NewStatusError(500, "")) {
		t.Error("IsNotFound should be false for 500")
	}
	if IsNotFound(NewNotFoundError("Color not found in species data", "")) {
		t.Error("missing attributes are not upstream 404s")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("IsNotFound should be false for plain errors")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should be nil")
	}

	original := NewTransportError(errors.New("refused"))
	if got := Wrap(fmt.Errorf("ctx: %w", original)); got != original {
		t.Error("Wrap should return the APIError in the chain")
	}

	got := Wrap(errors.New("plain"))
	if got.Kind != KindUnexpected || got.Details != "plain" {
		t.Errorf("Wrap(plain) = %+v", got)
	}
}
