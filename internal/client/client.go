// Package client is the authenticated REST client every dashboard module
// uses to talk to the asset-management backend.
//
// A Client resolves the bearer token from its credential.Session before each
// authenticated call, attaches it, dispatches exactly one HTTP request and
// normalizes the outcome: 2xx bodies are decoded into the caller's value,
// anything else becomes an error. Nothing is retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kurniawan20/effiework-sub000/internal/client/credential"
)

// Request describes one call.
type Request struct {
	// Endpoint is the path relative to the base URL, including any query string.
	Endpoint string
	// Method is one of GET, POST, PUT, PATCH, DELETE.
	Method string
	// Body is JSON-encoded for POST, PUT and PATCH and ignored otherwise.
	Body any
	// RequireAuth makes a missing credential fail the call before dispatch.
	RequireAuth bool
}

// NewRequest returns an authenticated Request.
func NewRequest(method, endpoint string, body any) Request {
	return Request{Endpoint: endpoint, Method: method, Body: body, RequireAuth: true}
}

// Public returns a copy of r that does not require a credential.
func (r Request) Public() Request {
	r.RequireAuth = false
	return r
}

// validator is implemented by response types that check themselves.
type validator interface {
	Validate() error
}

// Client dispatches requests to a fixed base URL. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *credential.Session
	navigator  Navigator
	policy     RedirectPolicy
	authMarker string
	log        *zap.Logger
	requestID  func() string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithNavigator sets the login redirect side effect.
func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

// WithRedirectPolicy sets which 401 responses trigger the navigator.
func WithRedirectPolicy(p RedirectPolicy) Option {
	return func(c *Client) { c.policy = p }
}

// WithAuthMarker sets the path fragment identifying authentication endpoints.
func WithAuthMarker(marker string) Option {
	return func(c *Client) { c.authMarker = marker }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for baseURL (for example "http://localhost:8083/api").
func New(baseURL string, session *credential.Session, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    session,
		navigator:  noopNavigator{},
		policy:     RedirectAuthRoutes,
		authMarker: "/auth",
		log:        zap.NewNop(),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the credential session the client reads tokens from.
func (c *Client) Session() *credential.Session {
	return c.session
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

func supported(method string) bool {
	switch method {
	case http.MethodGet, http.MethodDelete:
		return true
	}
	return hasBody(method)
}

// Do performs req and decodes a 2xx JSON body into out. out may be nil when
// the caller does not need the body. Every failure is returned; nothing is
// swallowed or retried.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	method := strings.ToUpper(req.Method)
	if !supported(method) {
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, req.Method)
	}

	var token string
	if req.RequireAuth {
		t, ok, err := c.session.Token()
		if err != nil {
			return fmt.Errorf("resolve credential: %w", err)
		}
		if !ok {
			return ErrAuthRequired
		}
		token = t
	}

	var body io.Reader
	if hasBody(method) && req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+req.Endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", c.requestID())
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("endpoint", req.Endpoint),
			zap.Error(err),
		)
		return &TransportError{Method: method, Endpoint: req.Endpoint, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Endpoint: req.Endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	c.log.Debug("request done",
		zap.String("method", method),
		zap.String("endpoint", req.Endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.unauthorized(ctx, req.Endpoint)
		}
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, data),
			Method:     method,
			Endpoint:   req.Endpoint,
		}
		c.log.Warn("request rejected",
			zap.String("method", method),
			zap.String("endpoint", req.Endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, req.Endpoint, err)
	}
	if v, ok := out.(validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, req.Endpoint, err)
		}
	}
	return nil
}

// unauthorized clears the credential and redirects according to the policy.
func (c *Client) unauthorized(ctx context.Context, endpoint string) {
	if err := c.session.ClearToken(); err != nil {
		c.log.Error("failed to clear credential after 401", zap.Error(err))
	}
	if c.policy.shouldRedirect(endpoint, c.authMarker) {
		c.navigator.RedirectToLogin(ctx, endpoint)
	}
}

// errorMessage extracts the server's "message" field, falling back to the
// status line.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}

// Call performs req and returns the decoded body as T.
func Call[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var out T
	if err := c.Do(ctx, req, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Get performs an authenticated GET.
func Get[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	return Call[T](ctx, c, NewRequest(http.MethodGet, endpoint, nil))
}

// Post performs an authenticated POST with a JSON body.
func Post[T any](ctx context.Context, c *Client, endpoint string, body any) (T, error) {
	return Call[T](ctx, c, NewRequest(http.MethodPost, endpoint, body))
}

// Put performs an authenticated PUT with a JSON body.
func Put[T any](ctx context.Context, c *Client, endpoint string, body any) (T, error) {
	return Call[T](ctx, c, NewRequest(http.MethodPut, endpoint, body))
}

// Patch performs an authenticated PATCH with a JSON body.
func Patch[T any](ctx context.Context, c *Client, endpoint string, body any) (T, error) {
	return Call[T](ctx, c, NewRequest(http.MethodPatch, endpoint, body))
}

// Delete performs an authenticated DELETE, discarding any response body.
func (c *Client) Delete(ctx context.Context, endpoint string) error {
	return c.Do(ctx, NewRequest(http.MethodDelete, endpoint, nil), nil)
}
