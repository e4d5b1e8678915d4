package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescredit/internal/platform/middleware"
	"salescredit/pkg/requestcontext"
)

const signingKey = "test-signing-key"

func mint(t *testing.T, key, subject string, admin bool, expires time.Time) string {
	t.Helper()
	claims := middleware.Claims{
		IsAdmin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return raw
}

func TestValidator(t *testing.T) {
	v := middleware.NewValidator(signingKey)
	future := time.Now().Add(time.Hour)

	t.Run("valid token", func(t *testing.T) {
		claims, err := v.Validate(mint(t, signingKey, "7", true, future))
		require.NoError(t, err)
		assert.Equal(t, "7", claims.Subject)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := v.Validate(mint(t, "other-key", "7", false, future))
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := v.Validate(mint(t, signingKey, "7", false, time.Now().Add(-time.Minute)))
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		_, err := v.Validate(mint(t, signingKey, "", false, future))
		assert.Error(t, err)
	})
}

func TestRequireAuth(t *testing.T) {
	v := middleware.NewValidator(signingKey)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var gotActor string
	var gotAdmin bool
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotActor = requestcontext.Actor(r.Context()).String()
		gotAdmin = requestcontext.IsAdmin(r.Context())
		gotToken = requestcontext.Token(r.Context())
	})
	handler := middleware.RequireAuth(v, log)(next)

	t.Run("stashes actor, admin flag, and raw token", func(t *testing.T) {
		raw := mint(t, signingKey, "7", true, time.Now().Add(time.Hour))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+raw)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "7", gotActor)
		assert.True(t, gotAdmin)
		assert.Equal(t, raw, gotToken)
	})

	t.Run("rejects missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.RequireAdmin(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(requestcontext.WithAdmin(req.Context(), true)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
