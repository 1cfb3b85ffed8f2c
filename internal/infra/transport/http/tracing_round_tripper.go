package http

import (
	"net/http"

	"github.com/google/uuid"

	context_ "github.com/mkrupp/hirepulse-client/internal/infra/context"
)

const RequestIDHeader = "X-Request-ID"

// TracingRoundTripper stamps every outbound request with an X-Request-ID.
// The ID is taken from the request context or generated, and is stored back
// into the context so downstream round trippers and log records share it.
func TracingRoundTripper(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		requestID, ok := context_.RequestIDFromContext(r.Context())
		if !ok {
			requestID = uuid.NewString()
		}

		ctx := context_.WithRequestID(r.Context(), requestID)

		r = r.Clone(ctx)
		r.Header.Set(RequestIDHeader, requestID)

		return next.RoundTrip(r)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
