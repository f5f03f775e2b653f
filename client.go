package payloop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bjaus/payloop/internal/casing"
)

// Version is the revision of this library, sent in the User-Agent header.
const Version = "0.4.1"

// Server URLs for the two Payloop environments.
const (
	LiveBaseURL    = "https://api.payloop.com/v1"
	SandboxBaseURL = "https://sandbox.payloop.com/v1"
)

// Client calls the Payloop REST API. It is safe for concurrent use; build
// one per process and share it.
//
// The client never retries: every call maps to exactly one request, so a
// failure is safe to rerun or surface as the caller sees fit.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	limiter    *rate.Limiter
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different server, most usefully a
// test double.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithSandbox points the client at the sandbox environment. API keys are
// environment specific: a live key is rejected by the sandbox server and
// the other way around.
func WithSandbox() Option {
	return func(c *Client) {
		c.baseURL = SandboxBaseURL
	}
}

// WithHTTPClient replaces the underlying *http.Client. The default has a
// 30 second timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger replaces the logger used for request logging at debug level.
// The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithRateLimiter caps the outbound request rate. Each call waits for the
// limiter before sending, returning early if ctx expires while waiting.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New returns a Client that authenticates with apiKey against the live
// server.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    LiveBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
		userAgent:  "payloop-go/" + Version,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, v)
}

func (c *Client) post(ctx context.Context, path string, body, v any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, v)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do sends one request and decodes the response into v when v is non-nil.
// Mutating requests carry a fresh Idempotency-Key so that a network error
// is safe to rerun at the call site.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, v any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("Idempotency-Key", uuid.NewString())
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.DebugContext(ctx, "payloop api call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return apiError(resp, data)
	}
	if v == nil || len(data) == 0 {
		return nil
	}
	if err := casing.DecodeCamel(data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError shapes a non-2xx response into *APIError. The body is decoded
// on a best-effort basis: a response that is not the documented error
// shape still yields the status code.
func apiError(resp *http.Response, data []byte) error {
	out := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("x-request-id"),
	}

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := casing.DecodeCamel(data, &body); err == nil {
		out.Code = body.Error.Code
		out.Message = body.Error.Message
	}
	if out.Message == "" {
		out.Message = http.StatusText(resp.StatusCode)
	}
	return out
}
