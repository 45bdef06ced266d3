package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

const (
	DefaultTimeout           = 30 * time.Second
	DefaultGenerationTimeout = 2 * time.Minute

	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 1 << 20
)

// TokenSource yields the current bearer token, or "" when there is none.
type TokenSource func() string

// UnauthorizedHandler is called when an authenticated request is answered
// with 401.
type UnauthorizedHandler func(ctx context.Context)

type quietKey struct{}

// WithoutUnauthorizedHook marks ctx so that a 401 answer is returned to the
// caller without firing the unauthorized handler.
func WithoutUnauthorizedHook(ctx context.Context) context.Context {
	return context.WithValue(ctx, quietKey{}, true)
}

func hookSuppressed(ctx context.Context) bool {
	quiet, _ := ctx.Value(quietKey{}).(bool)
	return quiet
}

type Options struct {
	BaseURL           string
	Timeout           time.Duration
	GenerationTimeout time.Duration
	HTTPClient        *http.Client
	Logger            logging.Logger
}

// HTTPClient talks JSON to the backend. It is safe for concurrent use.
type HTTPClient struct {
	baseURL    string
	timeout    time.Duration
	genTimeout time.Duration
	http       *http.Client
	log        logging.Logger

	mu             sync.RWMutex
	token          TokenSource
	onUnauthorized UnauthorizedHandler
}

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", opts.BaseURL)
	}

	c := &HTTPClient{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		timeout:    opts.Timeout,
		genTimeout: opts.GenerationTimeout,
		http:       opts.HTTPClient,
		log:        opts.Logger,
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.genTimeout <= 0 {
		c.genTimeout = DefaultGenerationTimeout
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.log == nil {
		c.log = logging.NewNop()
	}
	return c, nil
}

func (c *HTTPClient) SetTokenSource(ts TokenSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ts
}

func (c *HTTPClient) OnUnauthorized(h UnauthorizedHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = h
}

func (c *HTTPClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == nil {
		return ""
	}
	return c.token()
}

func (c *HTTPClient) unauthorizedHandler() UnauthorizedHandler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onUnauthorized
}

type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	timeout time.Duration
}

// do performs one round trip and returns the raw 2xx body.
func (c *HTTPClient) do(ctx context.Context, r request) (json.RawMessage, error) {
	timeout := r.timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set(requestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token := c.currentToken()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api request failed", "method", r.method, "path", r.path, "request_id", reqID, "error", err)
		return nil, &APIError{kind: ErrUnavailable, cause: err}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request", "method", r.method, "path", r.path,
		"status", resp.StatusCode, "request_id", reqID, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw), kind: mapStatus(resp.StatusCode)}
		if resp.StatusCode == http.StatusUnauthorized && token != "" && !hookSuppressed(ctx) {
			if h := c.unauthorizedHandler(); h != nil {
				h(context.WithoutCancel(ctx))
			}
		}
		return nil, apiErr
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, kind: ErrUnavailable, cause: err}
	}
	return raw, nil
}

// errorMessage extracts the "error" or "message" field of an error body.
func errorMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}

// decode reads raw into a T. When raw is an object carrying key, the value
// under key is decoded instead, so both {"recipe": {...}} and a bare object
// are accepted.
func decode[T any](raw json.RawMessage, key string) (T, error) {
	var v T
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return v, nil
	}
	if key != "" && raw[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(raw, &env); err == nil {
			if inner, ok := env[key]; ok {
				raw = inner
			}
		}
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}

func decodePage[T any](raw json.RawMessage, key string) (*models.Page[T], error) {
	var meta struct {
		Total    int `json:"total"`
		Page     int `json:"page"`
		PageSize int `json:"page_size"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	items, err := decode[[]T](raw, key)
	if err != nil {
		return nil, err
	}
	return &models.Page[T]{Items: items, Total: meta.Total, Page: meta.Page, PageSize: meta.PageSize}, nil
}

func messageOf(raw json.RawMessage) (string, error) {
	m, err := decode[models.MessageResponse](raw, "")
	return m.Message, err
}

func pathID(prefix, id string, rest ...string) string {
	p := prefix + "/" + url.PathEscape(id)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

var errEmptyID = errors.New("id is required")
