// Package domainerrors defines the error taxonomy shared by all services.
//
// Services return these from their public operations; the HTTP layer
// translates codes into statuses. Infrastructure layers return sentinel
// errors (pkg/platform/sentinel) which services wrap into domain errors.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for transport mapping and for callers that
// branch on failure kind.
type Code string

const (
	CodeBadRequest    Code = "bad_request"
	CodeUnauthorized  Code = "unauthorized"
	CodeForbidden     Code = "forbidden"
	CodeNotFound      Code = "not_found"
	CodeConflict      Code = "conflict"
	CodeLimitExceeded Code = "limit_exceeded"
	CodeUpstream      Code = "upstream_error"
	CodeInternal      Code = "internal_error"
)

// Error is the single error type crossing service boundaries.
type Error struct {
	Code    Code
	Message string

	// Upstream carries the remote service's own status and body when Code is
	// CodeUpstream, so callers see the upstream failure verbatim.
	Upstream *UpstreamDetail

	cause error
}

// UpstreamDetail preserves a remote service's response for pass-through.
type UpstreamDetail struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. If err already
// carries a domain code, that code wins so classification survives layering.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return &Error{Code: de.Code, Message: message, Upstream: de.Upstream, cause: err}
	}
	return &Error{Code: code, Message: message, cause: err}
}

// NewUpstream builds an upstream error preserving the remote status and body.
func NewUpstream(status int, body string) *Error {
	return &Error{
		Code:     CodeUpstream,
		Message:  fmt.Sprintf("upstream returned status %d", status),
		Upstream: &UpstreamDetail{Status: status, Body: body},
	}
}

// HasCode reports whether err carries the given domain code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is a readability alias for HasCode.
func Is(err error, code Code) bool { return HasCode(err, code) }

// CodeOf extracts the domain code from err, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// UpstreamOf extracts upstream detail if err is an upstream error.
func UpstreamOf(err error) *UpstreamDetail {
	var de *Error
	if errors.As(err, &de) {
		return de.Upstream
	}
	return nil
}
