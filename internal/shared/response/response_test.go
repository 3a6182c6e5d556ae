package response

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"planets-proxy/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, http.StatusOK, map[string]any{"id": 9999, "name": "Newworld"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"id":9999,"name":"Newworld"}}`, rec.Body.String())
}

func TestErrorStatusAndMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        errors.NotFound("the provided ID does not correspond to any planet"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "the provided ID does not correspond to any planet",
		},
		{
			name:       "conflict",
			err:        errors.Conflict("a planet with this ID already exists"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "a planet with this ID already exists",
		},
		{
			name:       "external",
			err:        errors.WrapExternal("the planet data service is unavailable", stderrors.New("connection refused")),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "the planet data service is unavailable",
		},
		{
			name:       "method",
			err:        errors.MethodNotAllowed(http.MethodDelete),
			wantStatus: http.StatusMethodNotAllowed,
			wantMsg:    "method DELETE not allowed",
		},
		{
			name:       "untyped",
			err:        stderrors.New("nil map"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/planets/1", nil)

			Error(rec, req, discardLogger(), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.NotContains(t, body, "data")
		})
	}
}
