package atssvc

import (
	"context"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
)

// AuthAPI wraps the account endpoints.
type AuthAPI struct {
	*base
}

// Login exchanges credentials for an access token and the account profile.
// An absent access_token yields an empty LoginResult.Token; rejecting it is
// up to the caller.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	var resp domain.Record

	err := a.do(ctx, "login", http_.Request{
		Endpoint: "/auth/login",
		Method:   http_.MethodPost,
		Payload:  map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return domain.LoginResult{}, err
	}

	return domain.LoginResult{
		User:  a.conv.user(record(resp["user"])),
		Token: str(resp["access_token"]),
	}, nil
}

// GetProfile returns the account of the current token. The backend may wrap
// the account in a "user" object.
func (a *AuthAPI) GetProfile(ctx context.Context) (domain.User, error) {
	var resp domain.Record

	if err := a.do(ctx, "get profile", http_.Request{Endpoint: "/auth/me"}, &resp); err != nil {
		return domain.User{}, err
	}

	if u := record(resp["user"]); u != nil {
		return a.conv.user(u), nil
	}

	return a.conv.user(resp), nil
}

// Register creates an account. The role is translated into its backend name.
func (a *AuthAPI) Register(ctx context.Context, name, email, password string, role domain.Role) (any, error) {
	return a.passthrough(ctx, "register", http_.Request{
		Endpoint: "/auth/register",
		Method:   http_.MethodPost,
		Payload: domain.Registration{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     role.Backend(),
		},
	})
}

// ForgotPassword asks the backend to send a password reset mail.
func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) (any, error) {
	return a.passthrough(ctx, "forgot password", http_.Request{
		Endpoint: "/auth/forgot-password",
		Method:   http_.MethodPost,
		Payload:  map[string]string{"email": email},
	})
}

func (c converter) user(u domain.Record) domain.User {
	return domain.User{
		ID:           str(u["id"]),
		Name:         str(u["name"]),
		Role:         domain.RoleFromBackend(str(u["role"])),
		Avatar:       c.avatar(strOr(u, "user", "id", "email", "name")),
		Status:       domain.NormalizeUserStatus(str(firstTruthy(u, "status"))),
		Email:        str(u["email"]),
		LastLogin:    str(u["lastLogin"]),
		Department:   str(u["department"]),
		EmployeeCode: str(first(u, "employeeCode", "employee_code")),
	}
}
