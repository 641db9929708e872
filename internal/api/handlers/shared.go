package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ndewijer/Business-Ledger-Backend/internal/validation"
)

// maxBodyBytes caps request bodies read by parseJSON.
const maxBodyBytes = 1 << 20

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			zap.L().Warn("failed to encode JSON", zap.Error(err))
		}
	}
}

// parseJSON decodes the request body into T, rejecting unknown fields and trailing data.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T

	if r.Body == nil || r.Body == http.NoBody {
		return req, errors.New("request body is required")
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to decode request body: %w", err)
	}
	if decoder.More() {
		return req, errors.New("request body must contain a single JSON object")
	}

	return req, nil
}

// validationDetails exposes per-field messages for validation errors and the
// plain message for anything else.
func validationDetails(err error) interface{} {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return vErr.Fields
	}
	return err.Error()
}
