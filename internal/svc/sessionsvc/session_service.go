// Package sessionsvc drives the session lifecycle of the HirePulse client:
// bootstrap from a persisted token, login, registration and logout, including
// the forced logout triggered by any 401 from the backend.
package sessionsvc

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	"github.com/mkrupp/hirepulse-client/internal/infra/logging"
	"github.com/mkrupp/hirepulse-client/internal/repo/token"
	"github.com/mkrupp/hirepulse-client/internal/session"
)

// State is a step of the session lifecycle.
type State string

const (
	StateAnonymous      State = "ANONYMOUS"
	StateAuthenticating State = "AUTHENTICATING"
	StateAuthenticated  State = "AUTHENTICATED"
)

// Authenticator is the subset of the auth facade the service drives.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (domain.LoginResult, error)
	GetProfile(ctx context.Context) (domain.User, error)
	Register(ctx context.Context, name, email, password string, role domain.Role) (any, error)
}

// HandlerRegistrar accepts the unauthorized handler of the service.
type HandlerRegistrar interface {
	SetUnauthorizedHandler(h session.UnauthorizedHandler)
}

// SessionService owns the session state and the signed-in user.
type SessionService struct {
	auth   Authenticator
	tokens token.Repository
	log    logging.Logger
	now    func() time.Time

	mu       sync.RWMutex
	state    State
	user     *domain.User
	onLogout func(ctx context.Context)
}

// NewSessionService creates a SessionService and registers its unauthorized
// handler with registrar, replacing any handler registered before.
func NewSessionService(auth Authenticator, tokens token.Repository, registrar HandlerRegistrar) *SessionService {
	s := &SessionService{
		auth:   auth,
		tokens: tokens,
		log:    logging.GetLogger("svc.sessionsvc.session_service"),
		now:    time.Now,
		state:  StateAnonymous,
	}

	registrar.SetUnauthorizedHandler(s.handleUnauthorized)

	return s
}

// State returns the current lifecycle state.
func (s *SessionService) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// User returns the signed-in user, if any.
func (s *SessionService) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}

	return *s.user, true
}

// OnLogout sets a hook run after a 401 forced the session closed.
func (s *SessionService) OnLogout(fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onLogout = fn
}

// Bootstrap restores the session from a persisted token. Without a token the
// session stays anonymous. When the profile cannot be fetched the token is
// dropped and the error is returned.
func (s *SessionService) Bootstrap(ctx context.Context) (err error) {
	log := s.log

	defer func() {
		if err != nil {
			log.WarnContext(ctx, "session bootstrap failed", "error", err)
		}
	}()

	tkn, ok, err := s.tokens.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	} else if !ok {
		log.DebugContext(ctx, "no persisted session")

		return nil
	}

	if claims, err := session.Inspect(tkn); err == nil && claims.Expired(s.now()) {
		log.WarnContext(ctx, "persisted token already expired",
			"exp", claims.ExpiresAt.UTC().Format(time.RFC3339))
	}

	s.transition(StateAuthenticating, nil)

	user, err := s.auth.GetProfile(ctx)
	if err != nil {
		s.transition(StateAnonymous, nil)

		if cerr := s.tokens.ClearToken(ctx); cerr != nil {
			log.WarnContext(ctx, "clear stale token failed", "error", cerr)
		}

		return err //nolint:wrapcheck
	}

	s.transition(StateAuthenticated, &user)

	log.With(logging.Group("user", "id", user.ID, "role", user.Role)).
		InfoContext(ctx, "session restored")

	return nil
}

// Login signs in with email and password and persists the issued token.
func (s *SessionService) Login(ctx context.Context, email, password string) (_ domain.User, err error) {
	log := s.log.With(logging.Group("user", "email", email))

	defer func() {
		if err != nil {
			log.ErrorContext(ctx, "login failed", "error", err)
		} else {
			log.InfoContext(ctx, "login successful")
		}
	}()

	if email == "" {
		return domain.User{}, domain.ErrEmailRequired
	} else if password == "" {
		return domain.User{}, domain.ErrPasswordRequired
	}

	s.transition(StateAuthenticating, nil)

	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		s.transition(StateAnonymous, nil)

		return domain.User{}, err //nolint:wrapcheck
	}

	if res.Token == "" {
		s.transition(StateAnonymous, nil)

		return domain.User{}, domain.ErrEmptyAuthToken
	}

	if err := s.tokens.StoreToken(ctx, res.Token); err != nil {
		s.transition(StateAnonymous, nil)

		return domain.User{}, fmt.Errorf("store token: %w", err)
	}

	s.transition(StateAuthenticated, &res.User)

	return res.User, nil
}

// Register creates an account and signs in with it. The name is trimmed and
// the email is trimmed and lower-cased before submission.
func (s *SessionService) Register(
	ctx context.Context, name, email, password string, role domain.Role,
) (_ domain.User, err error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	log := s.log.With(logging.Group("user", "email", email, "role", role))

	defer func() {
		if err != nil {
			log.ErrorContext(ctx, "register failed", "error", err)
		} else {
			log.DebugContext(ctx, "user registered")
		}
	}()

	switch {
	case utf8.RuneCountInString(name) < domain.MinNameLength:
		return domain.User{}, domain.ErrNameRequired
	case email == "":
		return domain.User{}, domain.ErrEmailRequired
	case utf8.RuneCountInString(password) < domain.MinPasswordLength:
		return domain.User{}, domain.ErrPasswordTooShort
	}

	s.transition(StateAuthenticating, nil)

	if _, err := s.auth.Register(ctx, name, email, password, role); err != nil {
		s.transition(StateAnonymous, nil)

		return domain.User{}, err //nolint:wrapcheck
	}

	return s.Login(ctx, email, password)
}

// Logout clears the persisted token and ends the session.
func (s *SessionService) Logout(ctx context.Context) error {
	s.transition(StateAnonymous, nil)

	if err := s.tokens.ClearToken(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}

	s.log.InfoContext(ctx, "logged out")

	return nil
}

func (s *SessionService) handleUnauthorized(ctx context.Context) {
	s.log.WarnContext(ctx, "session rejected by backend")

	if err := s.tokens.ClearToken(ctx); err != nil {
		s.log.WarnContext(ctx, "clear token failed", "error", err)
	}

	s.mu.Lock()
	s.state = StateAnonymous
	s.user = nil
	hook := s.onLogout
	s.mu.Unlock()

	if hook != nil {
		hook(ctx)
	}
}

func (s *SessionService) transition(state State, user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	s.user = user
}

// LandingPage returns the dashboard page a role starts on.
func LandingPage(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "admin-dash"
	case domain.RoleRecruiter:
		return "rec-dash"
	case domain.RoleManager:
		return "mgr-hub"
	default:
		return "cand-jobs"
	}
}
