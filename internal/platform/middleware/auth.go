package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	id "salescredit/pkg/domain"
	dErrors "salescredit/pkg/domain-errors"
	"salescredit/pkg/platform/httputil"
	"salescredit/pkg/requestcontext"
)

// Claims is the token payload issued by the auth service. The salescredit
// service only verifies and reads it; it never issues tokens.
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// Validator verifies bearer tokens against the shared signing key.
type Validator struct {
	signingKey []byte
}

func NewValidator(signingKey string) *Validator {
	return &Validator{signingKey: []byte(signingKey)}
}

// Validate parses and verifies a raw token, returning its claims.
func (v *Validator) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return v.signingKey, nil
	})
	if err != nil || !token.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	if claims.Subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token missing subject")
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and stashes the
// actor, admin flag, and the raw token (forwarded upstream as a capability)
// in the context.
func RequireAuth(v *Validator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing bearer token"))
				return
			}
			claims, err := v.Validate(raw)
			if err != nil {
				logger.WarnContext(r.Context(), "token rejected",
					"request_id", requestcontext.RequestID(r.Context()),
					"error", err.Error(),
				)
				httputil.WriteError(w, err)
				return
			}

			ctx := requestcontext.WithActor(r.Context(), id.UserID(claims.Subject))
			ctx = requestcontext.WithAdmin(ctx, claims.IsAdmin)
			ctx = requestcontext.WithToken(ctx, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates admin-only routes. Must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requestcontext.IsAdmin(r.Context()) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "you are not allowed to access this resource"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}
