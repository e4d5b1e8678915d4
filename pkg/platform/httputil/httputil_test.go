package httputil_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "salescredit/pkg/domain-errors"
	"salescredit/pkg/platform/httputil"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()
	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteError(t *testing.T) {
	t.Run("domain error carries its message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteError(rec, dErrors.New(dErrors.CodeLimitExceeded, "over the limit"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, "limit_exceeded", resp.Error)
		assert.Equal(t, "over the limit", resp.ErrorDescription)
	})

	t.Run("internal errors leak no detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteError(rec, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decode(t, rec)
		assert.Equal(t, "internal_error", resp.Error)
		assert.Empty(t, resp.ErrorDescription)
	})

	t.Run("upstream errors include the remote response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httputil.WriteError(rec, dErrors.NewUpstream(500, `{"message":"boom"}`))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		resp := decode(t, rec)
		require.NotNil(t, resp.Upstream)
		assert.Equal(t, 500, resp.Upstream.Status)
		assert.Contains(t, resp.Upstream.Body, "boom")
	})
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[dErrors.Code]int{
		dErrors.CodeBadRequest:    http.StatusBadRequest,
		dErrors.CodeLimitExceeded: http.StatusBadRequest,
		dErrors.CodeUnauthorized:  http.StatusUnauthorized,
		dErrors.CodeForbidden:     http.StatusForbidden,
		dErrors.CodeNotFound:      http.StatusNotFound,
		dErrors.CodeConflict:      http.StatusConflict,
		dErrors.CodeUpstream:      http.StatusBadGateway,
		dErrors.CodeInternal:      http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, httputil.ToHTTPStatus(code), string(code))
	}
}
