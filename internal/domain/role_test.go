package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkrupp/hirepulse-client/internal/domain"
)

func TestRoleFromBackend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want domain.Role
	}{
		{"admin", domain.RoleAdmin},
		{"recruiter", domain.RoleRecruiter},
		{"manager", domain.RoleManager},
		{"hod", domain.RoleManager},
		{"candidate", domain.RoleCandidate},
		{"ADMIN", domain.RoleAdmin},
		{"HoD", domain.RoleManager},
		{"superuser", domain.RoleCandidate},
		{"", domain.RoleCandidate},
		{" admin", domain.RoleCandidate},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.RoleFromBackend(tt.in))
		})
	}
}

func TestRole_Backend(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "admin", domain.RoleAdmin.Backend())
	assert.Equal(t, "recruiter", domain.RoleRecruiter.Backend())
	assert.Equal(t, "manager", domain.RoleManager.Backend())
	assert.Equal(t, "candidate", domain.RoleCandidate.Backend())
	assert.Equal(t, "candidate", domain.RoleGuest.Backend())
	assert.Equal(t, "candidate", domain.Role("SOMETHING").Backend())
}

func TestRole_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, role := range []domain.Role{
		domain.RoleAdmin,
		domain.RoleRecruiter,
		domain.RoleManager,
		domain.RoleCandidate,
	} {
		assert.Equal(t, role, domain.RoleFromBackend(role.Backend()), role)
	}

	assert.Equal(t, domain.RoleCandidate, domain.RoleFromBackend(domain.RoleGuest.Backend()))
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   domain.Role
		wantOK bool
	}{
		{"HIRING_MANAGER", domain.RoleManager, true},
		{"hiring_manager", domain.RoleManager, true},
		{"manager", domain.RoleManager, true},
		{"hod", domain.RoleManager, true},
		{"guest", domain.RoleGuest, true},
		{" recruiter ", domain.RoleRecruiter, true},
		{"ceo", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := domain.ParseRole(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
