package domain

import "errors"

// Authentication errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidIdentity    = errors.New("invalid identity")
	ErrInvalidRole        = errors.New("invalid role")
)

// Registration errors.
var (
	ErrRegistrationFailed = errors.New("registration failed")
	ErrEmailTaken         = errors.New("email already registered")
)

// Directory errors.
var (
	ErrInvalidApplicationStatus = errors.New("invalid application status")
)

// Upstream platform API errors.
var (
	ErrUpstreamUnavailable  = errors.New("platform API unavailable")
	ErrUpstreamUnauthorized = errors.New("platform API rejected the session token")
)

// Token errors.
var (
	ErrTokenInvalid    = errors.New("invalid session token")
	ErrTokenGeneration = errors.New("token generation failed")
	ErrSecretTooWeak   = errors.New("session token secret too weak")
)
