// Package fakeapi provides an in-process stand-in for the HirePulse backend.
// Responses are canned per method and path; every request is recorded.
package fakeapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// Request is a recorded inbound request.
type Request struct {
	Method      string
	Path        string
	EscapedPath string
	Query       string
	Header      http.Header
	Body        []byte
}

// Server is a fake backend served by httptest.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]gin.HandlerFunc
	requests []Request
}

// New starts a Server that is closed when t finishes.
func New(t testing.TB) *Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	srv := &Server{routes: make(map[string]gin.HandlerFunc)}

	engine := gin.New()
	engine.NoRoute(srv.serve)

	srv.Server = httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return srv
}

func routeKey(method, path string) string {
	return method + " " + path
}

func (s *Server) serve(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		EscapedPath: c.Request.URL.EscapedPath(),
		Query:       c.Request.URL.RawQuery,
		Header:      c.Request.Header.Clone(),
		Body:        body,
	})
	handler, ok := s.routes[routeKey(c.Request.Method, c.Request.URL.Path)]
	s.mu.Unlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})

		return
	}

	handler(c)
}

// HandleFunc routes method and path to fn, replacing an earlier route.
func (s *Server) HandleFunc(method, path string, fn gin.HandlerFunc) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.routes[routeKey(method, path)] = fn

	return s
}

// Handle answers method and path with body encoded as JSON. A nil body sends
// only the status.
func (s *Server) Handle(method, path string, status int, body any) *Server {
	return s.HandleFunc(method, path, func(c *gin.Context) {
		if body == nil {
			c.Status(status)
			c.Writer.WriteHeaderNow()

			return
		}

		c.JSON(status, body)
	})
}

// HandleRaw answers method and path with raw bytes.
func (s *Server) HandleRaw(method, path string, status int, contentType, raw string) *Server {
	return s.HandleFunc(method, path, func(c *gin.Context) {
		c.Data(status, contentType, []byte(raw))
	})
}

// Requests returns all recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Request(nil), s.requests...)
}

// Last returns the most recent request. It fails t if none was recorded.
func (s *Server) Last(t testing.TB) Request {
	t.Helper()

	requests := s.Requests()
	if len(requests) == 0 {
		t.Fatal("no request recorded")
	}

	return requests[len(requests)-1]
}

// Count returns how often method and path were requested.
func (s *Server) Count(method, path string) int {
	n := 0

	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}

	return n
}
