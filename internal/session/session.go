package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cast"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	"github.com/mkrupp/hirepulse-client/internal/infra/logging"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
	"github.com/mkrupp/hirepulse-client/internal/repo/token"
)

// UnauthorizedHandler reacts to a 401 from the backend.
type UnauthorizedHandler func(ctx context.Context)

// Session holds the cross-cutting session state the API client needs: read
// access to the persisted token and a single unauthorized handler slot.
type Session struct {
	tokens token.Reader
	log    logging.Logger

	mu      sync.RWMutex
	handler UnauthorizedHandler
}

var _ http_.Session = (*Session)(nil)

// New creates a Session reading tokens from tokens.
func New(tokens token.Reader) *Session {
	return &Session{
		tokens: tokens,
		log:    logging.GetLogger("session"),
	}
}

// Token returns the persisted token. Storage failures are logged and
// reported as no token.
func (s *Session) Token(ctx context.Context) (string, bool) {
	tkn, ok, err := s.tokens.GetToken(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "token storage unavailable", "error", err)

		return "", false
	}

	return tkn, ok
}

// SetUnauthorizedHandler replaces the registered handler. Passing nil
// unregisters it.
func (s *Session) SetUnauthorizedHandler(h UnauthorizedHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handler = h
}

// UnauthorizedHandler returns the registered handler, or nil.
func (s *Session) UnauthorizedHandler() UnauthorizedHandler {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.handler
}

// Unauthorized invokes the registered handler, if any.
func (s *Session) Unauthorized(ctx context.Context) {
	h := s.UnauthorizedHandler()
	if h == nil {
		s.log.DebugContext(ctx, "unauthorized response without handler")

		return
	}

	h(ctx)
}

type backendClaims struct {
	jwt.RegisteredClaims

	UserID any    `json:"user_id"`
	Role   string `json:"role"`
}

// Inspect decodes the claims of a backend access token without verifying its
// signature.
func Inspect(tkn string) (domain.AuthTokenClaims, error) {
	if tkn == "" {
		return domain.AuthTokenClaims{}, domain.ErrNoAuthToken
	}

	var claims backendClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tkn, &claims); err != nil {
		return domain.AuthTokenClaims{}, errors.Join(domain.ErrInvalidAuthToken, fmt.Errorf("parse token: %w", err))
	}

	out := domain.AuthTokenClaims{
		Subject: claims.Subject,
		UserID:  cast.ToString(claims.UserID),
		Role:    domain.RoleFromBackend(claims.Role),
	}

	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
