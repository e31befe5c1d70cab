package client

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/anmicius0/nexus-cli/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderRequestID   = "X-Request-Id"

	ContentTypeJSON        = "application/json"
	ContentTypeOctetStream = "application/octet-stream"

	maxLoggedBody = 1000
)

// Request is one HTTP exchange against the Nexus management API.
type Request struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
}

// Response is the raw outcome of an exchange. Status classification is left
// to the caller.
type Response struct {
	Status  int
	Content []byte
}

// String returns the response body as text.
func (r *Response) String() string {
	return string(r.Content)
}

// Transport performs single request/response exchanges. Connection-level
// failures are reported as KindServerUnavailable errors; any HTTP status,
// including 4xx and 5xx, is returned as a Response.
type Transport interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// HTTPConfig holds what NewHTTPClient needs to reach the server.
type HTTPConfig struct {
	BaseURL   string
	Username  string
	Password  string
	SSLVerify bool
	Timeout   time.Duration
}

// HTTPClient is a Transport backed by resty.
type HTTPClient struct {
	client *resty.Client
}

// NewHTTPClient creates a new HTTPClient with basic auth and JSON headers.
func NewHTTPClient(cfg HTTPConfig) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader(HeaderAccept, ContentTypeJSON).
		SetHeader(HeaderContentType, ContentTypeJSON).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetTimeout(timeout)
	if !cfg.SSLVerify {
		rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in via --ssl-verify=false
	}
	return &HTTPClient{client: rc}
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	return c.client.Close()
}

// Do performs the exchange and logs it. Long bodies are truncated in logs.
func (c *HTTPClient) Do(ctx context.Context, req Request) (*Response, error) {
	requestID := uuid.New().String()
	request := c.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID).
		SetHeaders(req.Headers)
	if req.Body != nil {
		request.SetBody(req.Body)
	}

	log := utils.WithComponent("transport").With(
		zap.String(utils.FieldMethod, req.Method),
		zap.String(utils.FieldPath, req.Path),
		zap.String(utils.FieldRequestID, requestID))
	log.Debug("HTTP request start")

	start := time.Now()
	response, err := request.Execute(req.Method, req.Path)
	duration := time.Since(start)
	if err != nil {
		log.Error("HTTP request failed", zap.Duration(utils.FieldDuration, duration), zap.Error(err))
		return nil, &Error{Kind: KindServerUnavailable, Err: err}
	}

	status := response.StatusCode()
	fields := []zap.Field{
		zap.Int(utils.FieldStatusCode, status),
		zap.Duration(utils.FieldDuration, duration),
	}
	if status >= 400 {
		fields = append(fields, zap.String("body", truncate(strings.TrimSpace(response.String()))))
	}
	switch {
	case status == 404:
		// 404 is an expected outcome for existence checks
		log.Debug("API returned 404 (resource not found)", fields...)
	case status >= 500:
		log.Error("API error response (server)", fields...)
	case status >= 400:
		log.Warn("API error response (client)", fields...)
	default:
		log.Debug("HTTP request completed", fields...)
	}

	return &Response{Status: status, Content: response.Bytes()}, nil
}

func truncate(body string) string {
	if len(body) > maxLoggedBody {
		return body[:maxLoggedBody] + "…"
	}
	return body
}
