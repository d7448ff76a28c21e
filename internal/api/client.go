package api

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

	"github.com/avictorio/fieldparts/pkg/config"
	pkgerrors "github.com/avictorio/fieldparts/pkg/errors"
	"github.com/avictorio/fieldparts/pkg/logger"
	"github.com/google/uuid"
)

const responseBodyReadLimit int64 = 4096

var (
	errBaseURLRequired = errors.New("api base url is required")
	errLoggerRequired  = errors.New("api logger is required")
)

// Client talks to the maintenance backend: JSON over HTTPS, opaque bearer
// auth, one round-trip per operation, no automatic retries. Mutating calls
// carry a fresh idempotency key so the server can dedupe resubmits.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	userAgent  string
	logger     *logger.Logger
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithToken replaces the bearer token, e.g. after a session refresh.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = strings.TrimSpace(token)
	}
}

// NewClient builds the backend client from configuration.
func NewClient(cfg config.APIConfig, logg *logger.Logger, opts ...Option) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil, errBaseURLRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      strings.TrimSpace(cfg.Token),
		userAgent:  cfg.UserAgent,
		logger:     logg,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}
	return client, nil
}

// envelope is the backend's uniform response shape. Data is absent on bare
// confirmations; Message carries the server's user-facing text when present.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// NewIdempotencyKey returns a unique key for mutating operations.
func (c *Client) NewIdempotencyKey(prefix string) string {
	key := strings.TrimSpace(prefix)
	if key == "" {
		key = "fp"
	}
	return fmt.Sprintf("%s-%s", key, uuid.NewString())
}

// get issues a GET and decodes the envelope's data into out.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, nil, out, false)
}

// post issues a POST with a JSON body and decodes the envelope's data into
// out when out is non-nil. All posts are mutations, so they carry an
// idempotency key.
func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, body, out, true)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any, idempotent bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, fmt.Sprintf("marshal %s request", op))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, fmt.Sprintf("build %s request", op))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.decorate(req, idempotent, op)

	c.log(ctx, "request", op, nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(ctx, op, resp)
	}

	if out == nil {
		c.log(ctx, "response", op, map[string]any{"status": resp.StatusCode})
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, responseBodyReadLimit))
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log(ctx, "error", op, map[string]any{"error": err.Error()})
		return pkgerrors.Wrap(pkgerrors.CodeServer, err, fmt.Sprintf("decode %s response", op))
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.log(ctx, "error", op, map[string]any{"error": err.Error()})
			return pkgerrors.Wrap(pkgerrors.CodeServer, err, fmt.Sprintf("decode %s payload", op))
		}
	}
	c.log(ctx, "response", op, map[string]any{"status": resp.StatusCode})
	return nil
}

func (c *Client) decorate(req *http.Request, idempotent bool, op string) {
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if idempotent {
		req.Header.Set("Idempotency-Key", c.NewIdempotencyKey(op))
	}
}

// errorFromResponse turns a non-2xx reply into a typed error, preferring the
// server's own message over the generic fallback.
func (c *Client) errorFromResponse(ctx context.Context, op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	code := pkgerrors.FromStatus(resp.StatusCode)

	message := ""
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		message = strings.TrimSpace(env.Message)
	}

	c.log(ctx, "error", op, map[string]any{
		"status": resp.StatusCode,
		"error":  fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
	})

	cause := fmt.Errorf("%s: status %d", op, resp.StatusCode)
	return pkgerrors.Wrap(code, cause, message)
}

func (c *Client) buildURL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = redact(k, v)
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Error(ctx, fmt.Sprintf("api %s", op), errors.New(fmt.Sprint(fields["error"])))
	default:
		c.logger.Info(ctx, fmt.Sprintf("api %s", phase))
	}
}

func redact(key string, value any) any {
	lower := strings.ToLower(key)
	for _, sensitive := range []string{"token", "authorization", "secret", "password"} {
		if strings.Contains(lower, sensitive) {
			return "[REDACTED]"
		}
	}
	return value
}
