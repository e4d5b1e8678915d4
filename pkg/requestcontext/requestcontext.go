// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them, services read them, so
// services never import net/http.
package requestcontext

import (
	"context"
	"time"

	id "salescredit/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	actorKey       struct{}
	adminKey       struct{}
	tokenKey       struct{}
	requestIDKey   struct{}
	userAgentKey   struct{}
	requestTimeKey struct{}
)

// Actor retrieves the authenticated user ID from the context.
func Actor(ctx context.Context) id.UserID {
	if actor, ok := ctx.Value(actorKey{}).(id.UserID); ok {
		return actor
	}
	return ""
}

// WithActor injects the authenticated user ID into the context.
func WithActor(ctx context.Context, actor id.UserID) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// IsAdmin reports whether the caller carries the admin claim.
func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey{}).(bool)
	return admin
}

// WithAdmin marks the context as belonging to an admin caller.
func WithAdmin(ctx context.Context, admin bool) context.Context {
	return context.WithValue(ctx, adminKey{}, admin)
}

// Token retrieves the caller's raw bearer token. It is an opaque capability
// forwarded to upstream services, never inspected by domain logic.
func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// WithToken injects the caller's raw bearer token into the context.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// RequestID retrieves the request correlation ID.
func RequestID(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

// WithRequestID injects a request correlation ID into the context.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// UserAgent retrieves the normalized client user agent, if captured.
func UserAgent(ctx context.Context) string {
	ua, _ := ctx.Value(userAgentKey{}).(string)
	return ua
}

// WithUserAgent injects the normalized client user agent into the context.
func WithUserAgent(ctx context.Context, ua string) context.Context {
	return context.WithValue(ctx, userAgentKey{}, ua)
}

// Now returns the request time if one was injected (tests, middleware),
// falling back to the wall clock.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(requestTimeKey{}).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime pins the request time, letting tests control clocks.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey{}, t)
}
