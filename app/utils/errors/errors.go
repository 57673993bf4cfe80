// Package errors defines the machine-readable error codes the REST surface
// reports. Clients branch on the code, not on the message text.
package errors

import "net/http"

// ErrorCode identifies a failure class in error response bodies.
type ErrorCode string

const (
	// Request shape
	CodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
	CodeValidationError ErrorCode = "VALIDATION_ERROR"
	CodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Authentication
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"
	// CodeSessionRevoked means the upstream platform stopped honoring the
	// session mid-flight and it has been logged out server-side.
	CodeSessionRevoked ErrorCode = "SESSION_REVOKED"

	// Registration
	CodeEmailTaken         ErrorCode = "EMAIL_TAKEN"
	CodeRegistrationFailed ErrorCode = "REGISTRATION_FAILED"

	// Upstream and internal
	CodeUpstreamError ErrorCode = "UPSTREAM_ERROR"
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// HTTPStatus returns the response status a code is reported with.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeInvalidRequest, CodeValidationError, CodeInvalidRole:
		return http.StatusBadRequest
	case CodeInvalidCredentials, CodeSessionNotFound, CodeSessionRevoked:
		return http.StatusUnauthorized
	case CodeEmailTaken:
		return http.StatusConflict
	case CodeRegistrationFailed:
		return http.StatusBadGateway
	case CodeUpstreamError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
