// Package response writes the JSON bodies returned by the ledger API.
package response

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
// Details carries field messages for validation failures or the underlying error text.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON sends data as JSON with the given status code.
// A nil data writes only the status, which is how 204 No Content is sent.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			zap.L().Warn("failed to encode JSON response", zap.Error(err))
		}
	}
}

// RespondError sends an ErrorResponse. Server errors are also logged with their details,
// since the request logger only records the status code.
//
// Example:
//
//	response.RespondError(w, http.StatusNotFound, apperrors.ErrCompanyNotFound.Error(), err.Error())
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	if status >= http.StatusInternalServerError {
		zap.L().Error(message, zap.Int("status", status), zap.Any("details", details))
	}

	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
