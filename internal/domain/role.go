package domain

import "strings"

// Role is the dashboard-side role tag of a user.
type Role string

const (
	RoleAdmin     Role = "ADMINISTRATOR"
	RoleRecruiter Role = "RECRUITER"
	RoleManager   Role = "HIRING_MANAGER"
	RoleCandidate Role = "CANDIDATE"
	RoleGuest     Role = "GUEST"
)

//nolint:gochecknoglobals
var (
	backendToRole = map[string]Role{
		"admin":     RoleAdmin,
		"recruiter": RoleRecruiter,
		"manager":   RoleManager,
		"hod":       RoleManager,
		"candidate": RoleCandidate,
	}

	roleToBackend = map[Role]string{
		RoleAdmin:     "admin",
		RoleRecruiter: "recruiter",
		RoleManager:   "manager",
		RoleCandidate: "candidate",
		RoleGuest:     "candidate",
	}
)

// RoleFromBackend maps a backend role string onto a Role.
// Matching is case-insensitive; unknown or empty input yields RoleCandidate.
func RoleFromBackend(role string) Role {
	if role == "" {
		return RoleCandidate
	}

	if r, ok := backendToRole[strings.ToLower(role)]; ok {
		return r
	}

	return RoleCandidate
}

// Backend returns the role string the backend expects for r.
// RoleGuest and unknown tags collapse onto "candidate".
func (r Role) Backend() string {
	if role, ok := roleToBackend[r]; ok {
		return role
	}

	return "candidate"
}

// ParseRole accepts either a dashboard tag ("HIRING_MANAGER") or a backend
// role ("manager") and returns the matching Role.
func ParseRole(s string) (Role, bool) {
	upper := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := roleToBackend[upper]; ok {
		return upper, true
	}

	if r, ok := backendToRole[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, true
	}

	return "", false
}

func (r Role) String() string {
	return string(r)
}
