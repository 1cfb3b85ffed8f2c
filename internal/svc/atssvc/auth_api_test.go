package atssvc_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrupp/hirepulse-client/internal/domain"
	http_ "github.com/mkrupp/hirepulse-client/internal/infra/transport/http"
)

func TestAuthAPI_Login(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPost, "/auth/login", http.StatusOK, gin.H{
		"access_token": "jwt-token",
		"user": gin.H{
			"id":            7,
			"name":          "Ada",
			"email":         "ada@example.com",
			"role":          "HOD",
			"status":        "inactive",
			"employee_code": "E-7",
		},
	})

	res, err := api.Auth.Login(context.Background(), "ada@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "jwt-token", res.Token)
	assert.Equal(t, domain.User{
		ID:           "7",
		Name:         "Ada",
		Role:         domain.RoleManager,
		Avatar:       "https://i.pravatar.cc/150?u=7",
		Status:       domain.UserStatusInactive,
		Email:        "ada@example.com",
		EmployeeCode: "E-7",
	}, res.User)

	assert.JSONEq(t, `{"email":"ada@example.com","password":"secret123"}`, string(srv.Last(t).Body))
}

func TestAuthAPI_LoginWithoutToken(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPost, "/auth/login", http.StatusOK, gin.H{"user": nil})

	res, err := api.Auth.Login(context.Background(), "a@example.com", "x")
	require.NoError(t, err)

	assert.Empty(t, res.Token)
	assert.Equal(t, domain.RoleCandidate, res.User.Role)
	assert.Equal(t, domain.UserStatusActive, res.User.Status)
	assert.Equal(t, "https://i.pravatar.cc/150?u=user", res.User.Avatar)
}

func TestAuthAPI_GetProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "wrapped", body: gin.H{"user": gin.H{"email": "bo b@example.com", "role": "recruiter"}}},
		{name: "root", body: gin.H{"email": "bo b@example.com", "role": "recruiter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, srv := newAPI(t)
			srv.Handle(http.MethodGet, "/auth/me", http.StatusOK, tt.body)

			user, err := api.Auth.GetProfile(context.Background())
			require.NoError(t, err)

			assert.Equal(t, domain.RoleRecruiter, user.Role)
			assert.Equal(t, "bo b@example.com", user.Email)
			assert.Equal(t, "https://i.pravatar.cc/150?u=bo%20b%40example.com", user.Avatar)
		})
	}
}

func TestAuthAPI_Register(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPost, "/auth/register", http.StatusCreated, gin.H{"id": 1})

	_, err := api.Auth.Register(context.Background(), "Ada", "ada@example.com", "secret123", domain.RoleGuest)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"name":"Ada","email":"ada@example.com","password":"secret123","role":"candidate"}`,
		string(srv.Last(t).Body),
	)
}

func TestAuthAPI_Unauthorized(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodGet, "/auth/me", http.StatusUnauthorized, gin.H{"detail": "expired"})

	_, err := api.Auth.GetProfile(context.Background())
	require.Error(t, err)
	assert.True(t, http_.IsUnauthorized(err))
	assert.Equal(t, http_.UnauthorizedMessage, err.Error())
}

func TestAuthAPI_ForgotPassword(t *testing.T) {
	t.Parallel()

	api, srv := newAPI(t)

	srv.Handle(http.MethodPost, "/auth/forgot-password", http.StatusOK, gin.H{"message": "sent"})

	out, err := api.Auth.ForgotPassword(context.Background(), "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"message": "sent"}, out)
	assert.JSONEq(t, `{"email":"ada@example.com"}`, string(srv.Last(t).Body))
}
