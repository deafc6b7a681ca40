package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_MapsErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"required value", errs.NewValueIsRequiredError("name"), http.StatusBadRequest, "invalid_request"},
		{"invalid value", errs.NewValueIsInvalidError("priority"), http.StatusBadRequest, "invalid_request"},
		{"not found", errs.NewObjectNotFoundError("job", "SHIP-20260830-000001"), http.StatusNotFound, "not_found"},
		{"permission denied", errs.NewPermissionDeniedError("user-1", "delete job"), http.StatusForbidden, "permission_denied"},
		{"invalid state", errs.NewInvalidStateError("invoice", "paid"), http.StatusConflict, "invalid_state"},
		{"conflict", errs.NewConflictError("trackingNumber", "SHIP-20260830-000001"), http.StatusConflict, "conflict"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, writeError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestWriteError_HidesInternalDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, writeError(c, errors.New("dial tcp 10.0.0.5:5432: i/o timeout")))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body.Message)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
