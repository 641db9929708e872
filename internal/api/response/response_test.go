package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRespondJSON_NoContent(t *testing.T) {
	w := httptest.NewRecorder()

	RespondJSON(w, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRespondError_LogsServerErrorsOnly(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)

	w := httptest.NewRecorder()
	RespondError(w, http.StatusNotFound, "company not found", "no rows")
	assert.Zero(t, logs.Len())

	w = httptest.NewRecorder()
	RespondError(w, http.StatusInternalServerError, "failed to retrieve companies", "disk I/O error")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "failed to retrieve companies", logs.All()[0].Message)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "failed to retrieve companies", body.Error)
	assert.Equal(t, "disk I/O error", body.Details)
}
