package domain

import (
	"errors"
	"time"
)

var (
	// ErrNoAuthToken is returned when a call needs a session token and none is stored.
	ErrNoAuthToken = errors.New("no auth token")
	// ErrInvalidAuthToken is returned when a stored token cannot be decoded.
	ErrInvalidAuthToken = errors.New("invalid auth token")
	// ErrEmptyAuthToken is returned when a successful login response carries no access token.
	ErrEmptyAuthToken = errors.New("login response did not include an access token")
	// ErrUnauthorized is returned when the backend answers with HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthTokenKey is the only key this client keeps in persistent storage.
const AuthTokenKey = "authToken"

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AuthTokenClaims exposes the claims the backend puts into its access tokens.
// They are read without signature verification and only serve diagnostics.
type AuthTokenClaims struct {
	Subject   string    `json:"sub"`
	UserID    string    `json:"userId"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the token expiry lies before now.
// Tokens without an expiry never expire.
func (c AuthTokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
