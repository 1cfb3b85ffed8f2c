package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mkrupp/hirepulse-client/internal/infra/logging"
)

const (
	AuthorizationHeader = "Authorization"
	ContentTypeHeader   = "Content-Type"
)

// ClientConfig holds configuration for the backend API client.
type ClientConfig struct {
	// BaseURL is prepended to every endpoint; trailing slashes are dropped
	BaseURL string `env:"BASE_URL" default:"http://localhost:8000"`

	// Timeout bounds each round trip; zero leaves requests unbounded
	Timeout time.Duration `env:"TIMEOUT" default:"0s"`
}

// Session supplies the bearer token and receives 401 notifications.
type Session interface {
	// Token returns the current bearer token, if any.
	Token(ctx context.Context) (string, bool)

	// Unauthorized is called once for every 401 response.
	Unauthorized(ctx context.Context)
}

// Client performs backend round trips with bearer auth, payload encoding and
// the status code contract shared by every API call.
type Client struct {
	httpClient *http.Client
	session    Session
	baseURL    string
	log        logging.Logger
}

// NewClient creates a Client. If httpClient is nil a client honoring
// cfg.Timeout is used; a given client is copied and its transport wrapped
// with request tracing and logging.
func NewClient(cfg ClientConfig, session Session, httpClient *http.Client) *Client {
	log := logging.GetLogger("infra.transport.http")

	var hc http.Client
	if httpClient != nil {
		hc = *httpClient
	} else {
		hc.Timeout = cfg.Timeout
	}

	next := hc.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	hc.Transport = TracingRoundTripper(LoggingRoundTripper(next, log))

	if session == nil {
		session = anonymous{}
	}

	return &Client{
		httpClient: &hc,
		session:    session,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		log:        log,
	}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs r and decodes a successful JSON response into out.
//
// A 401 invokes Session.Unauthorized and fails with "Unauthorized" whatever the
// body. A 204, or any 2xx with an empty body, succeeds and leaves out
// untouched. Every failure is an *Error.
func (c *Client) Do(ctx context.Context, r Request, out any) (err error) {
	method, err := r.Method.resolve()
	if err != nil {
		return &Error{Kind: KindRequest, Method: string(r.Method), Endpoint: r.Endpoint, Message: err.Error(), Err: err}
	}

	defer func() {
		if err != nil {
			c.log.ErrorContext(ctx, "api request failed", "method", method, "endpoint", r.Endpoint, "error", err)
		}
	}()

	body, contentType, err := r.body()
	if err != nil {
		return &Error{Kind: KindRequest, Method: method, Endpoint: r.Endpoint, Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+r.Endpoint, body)
	if err != nil {
		return &Error{Kind: KindRequest, Method: method, Endpoint: r.Endpoint, Message: err.Error(), Err: err}
	}

	if token, ok := c.session.Token(ctx); ok {
		req.Header.Set(AuthorizationHeader, "Bearer "+token)
	}

	if contentType != "" {
		req.Header.Set(ContentTypeHeader, contentType)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return &Error{
				Kind:     KindCanceled,
				Method:   method,
				Endpoint: r.Endpoint,
				Message:  fmt.Sprintf("Request to %s was canceled: %v", r.Endpoint, ctxErr),
				Err:      errors.Join(ctxErr, err),
			}
		}

		return networkError(method, r.Endpoint, err)
	}
	defer resp.Body.Close()

	return c.handle(ctx, method, r.Endpoint, resp, out)
}

func (c *Client) handle(ctx context.Context, method, endpoint string, resp *http.Response, out any) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		rescue(ctx, c.log, "unauthorized handler", func() {
			c.session.Unauthorized(ctx)
		})

		return unauthorizedError(method, endpoint)
	case resp.StatusCode == http.StatusNoContent:
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(method, endpoint, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(method, endpoint, resp.StatusCode, data)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if out == nil {
		if !json.Valid(data) {
			return decodeError(method, endpoint, resp.StatusCode, errors.New("invalid json"))
		}

		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return decodeError(method, endpoint, resp.StatusCode, err)
	}

	return nil
}

func decodeError(method, endpoint string, status int, err error) *Error {
	return &Error{
		Kind:     KindDecode,
		Status:   status,
		Method:   method,
		Endpoint: endpoint,
		Message:  fmt.Sprintf("Invalid response from %s: %v", endpoint, err),
		Err:      err,
	}
}

type anonymous struct{}

func (anonymous) Token(context.Context) (string, bool) { return "", false }

func (anonymous) Unauthorized(context.Context) {}
