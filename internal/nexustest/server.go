// Package nexustest provides a scriptable fake Nexus server for tests.
package nexustest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// Recorded is a request the fake server received.
type Recorded struct {
	Method string
	Path   string
	Query  string
	Body   string
	Header http.Header
}

// Reply is a canned response.
type Reply struct {
	Status int
	Body   string
}

// Server records every request and answers from scripted replies. Unscripted
// routes answer 501 so a test never silently passes on a missing stub.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[string][]Reply
	requests []Recorded
}

func routeKey(method, path string) string {
	return method + " " + path
}

// New starts a fake server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{replies: make(map[string][]Reply)}
	router := gin.New()
	router.NoRoute(s.handle)
	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Close)
	return s
}

// On queues a reply for method and path. Multiple replies for the same route
// are served in order; the last one repeats.
func (s *Server) On(method, path string, status int, body string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := routeKey(method, path)
	s.replies[key] = append(s.replies[key], Reply{Status: status, Body: body})
	return s
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Recorded(nil), s.requests...)
}

// Count returns how many requests hit method and path.
func (s *Server) Count(method, path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// Last returns the most recent request for method and path.
func (s *Server) Last(method, path string) (Recorded, bool) {
	reqs := s.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Method == method && reqs[i].Path == path {
			return reqs[i], true
		}
	}
	return Recorded{}, false
}

func (s *Server) handle(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	rec := Recorded{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Query:  c.Request.URL.RawQuery,
		Body:   string(body),
		Header: c.Request.Header.Clone(),
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	key := routeKey(rec.Method, rec.Path)
	queue := s.replies[key]
	var reply Reply
	found := len(queue) > 0
	if found {
		reply = queue[0]
		if len(queue) > 1 {
			s.replies[key] = queue[1:]
		}
	}
	s.mu.Unlock()

	if !found {
		c.String(http.StatusNotImplemented, "no stub for %s", key)
		return
	}
	if reply.Body == "" || reply.Status == http.StatusNoContent {
		c.Status(reply.Status)
		c.Writer.WriteHeaderNow()
		return
	}
	c.Data(reply.Status, "application/json", []byte(reply.Body))
}

// UnreachableURL returns a base URL nothing listens on.
func UnreachableURL(t testing.TB) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}
