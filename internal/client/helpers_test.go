package client

import (
	"context"
	"testing"
	"time"

	"github.com/anmicius0/nexus-cli/internal/nexustest"
)

func newTestResources(t *testing.T) (*nexustest.Server, *Resources) {
	t.Helper()
	srv := nexustest.New(t)
	httpClient := NewHTTPClient(HTTPConfig{
		BaseURL:   srv.URL,
		Username:  "admin",
		Password:  "admin123",
		SSLVerify: true,
		Timeout:   5 * time.Second,
	})
	t.Cleanup(func() { _ = httpClient.Close() })
	return srv, NewResources(httpClient, nil)
}

// countingTransport fails the test on use unless calls are expected.
type countingTransport struct {
	calls int
	reply *Response
}

func (c *countingTransport) Do(_ context.Context, _ Request) (*Response, error) {
	c.calls++
	if c.reply == nil {
		return &Response{Status: 200, Content: []byte(`{}`)}, nil
	}
	return c.reply, nil
}
