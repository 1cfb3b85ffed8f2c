package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/mkrupp/hirepulse-client/internal/domain"
)

const (
	// UnauthorizedMessage is the message of every 401 failure.
	UnauthorizedMessage = "Unauthorized"

	unknownServerError = "An unknown server error occurred"
	baseURLVar         = "HIREPULSE_API_BASE_URL"
)

// Kind classifies an Error. Callers that only need a user-facing message can
// ignore it and use Error() directly.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation"
	KindServer       Kind = "server"
	KindHTTP         Kind = "http"
	KindNetwork      Kind = "network"
	KindDecode       Kind = "decode"
	KindRequest      Kind = "request"
	KindCanceled     Kind = "canceled"
)

// Error is the only error type returned by Client.Do. Message is safe to show
// to end users.
type Error struct {
	Kind     Kind
	Status   int
	Method   string
	Endpoint string
	Message  string
	Issues   []Issue
	Err      error
}

// Issue is one field-level validation problem reported by the backend.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError returns the *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsUnauthorized reports whether err stems from a 401 response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// statusError converts a non-2xx response body into an Error.
func statusError(method, endpoint string, status int, body []byte) *Error {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		payload = map[string]any{"detail": unknownServerError}
	}

	apiErr := &Error{
		Status:   status,
		Method:   method,
		Endpoint: endpoint,
	}

	fields, _ := payload.(map[string]any)

	switch detail := fields["detail"].(type) {
	case []any:
		apiErr.Kind = KindValidation
		apiErr.Issues = validationIssues(detail)
		apiErr.Message = formatIssues(apiErr.Issues)

		return apiErr
	case string:
		apiErr.Kind = KindServer
		apiErr.Message = detail

		return apiErr
	}

	if message, ok := fields["message"].(string); ok {
		apiErr.Kind = KindServer
		apiErr.Message = message

		return apiErr
	}

	apiErr.Kind = KindHTTP
	apiErr.Message = fmt.Sprintf("HTTP error! status: %d", status)

	return apiErr
}

func validationIssues(detail []any) []Issue {
	issues := make([]Issue, 0, len(detail))

	for _, raw := range detail {
		item, _ := raw.(map[string]any)

		field := "request"
		if loc, ok := item["loc"].([]any); ok {
			parts := make([]string, len(loc))
			for i, p := range loc {
				parts[i] = cast.ToString(p)
			}

			field = strings.Join(parts, ".")
		}

		message := "Invalid value"
		if msg := cast.ToString(item["msg"]); msg != "" {
			message = msg
		}

		issues = append(issues, Issue{Field: field, Message: message})
	}

	return issues
}

func formatIssues(issues []Issue) string {
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.Field + ": " + issue.Message
	}

	return strings.Join(lines, "\n")
}

func unauthorizedError(method, endpoint string) *Error {
	return &Error{
		Kind:     KindUnauthorized,
		Status:   401,
		Method:   method,
		Endpoint: endpoint,
		Message:  UnauthorizedMessage,
		Err:      domain.ErrUnauthorized,
	}
}

func networkError(method, endpoint string, err error) *Error {
	return &Error{
		Kind:     KindNetwork,
		Method:   method,
		Endpoint: endpoint,
		Message: fmt.Sprintf(
			"Network request failed for %s. Check backend server status, CORS settings, and %s.",
			endpoint, baseURLVar,
		),
		Err: err,
	}
}
