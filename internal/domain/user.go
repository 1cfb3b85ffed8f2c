package domain

import "errors"

var (
	// ErrNameRequired is returned when registering without a display name.
	ErrNameRequired = errors.New("name is required")
	// ErrEmailRequired is returned when an auth call is made without an email.
	ErrEmailRequired = errors.New("email is required")
	// ErrPasswordRequired is returned when logging in without a password.
	ErrPasswordRequired = errors.New("password is required")
	// ErrPasswordTooShort is returned when a registration password has fewer than MinPasswordLength characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrUnknownRole is returned when a role tag cannot be parsed.
	ErrUnknownRole = errors.New("unknown role")
)

const (
	// MinPasswordLength is the shortest password accepted at registration.
	MinPasswordLength = 8
	// MinNameLength is the shortest display name accepted at registration.
	MinNameLength = 2
)

// User is the view-shape of an authenticated account.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Avatar       string     `json:"avatar"`
	Status       UserStatus `json:"status"`
	Email        string     `json:"email"`
	LastLogin    string     `json:"lastLogin"`
	Department   string     `json:"department"`
	EmployeeCode string     `json:"employeeCode"`
}

// Registration holds the fields submitted when creating an account.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
