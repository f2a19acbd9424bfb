// Package backend talks to the cleaning-service REST API. It is the data
// authority for everything the app shows; nothing here is persisted locally.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"cleanbook/config"
	"cleanbook/utils"
)

// TokenProvider supplies the bearer token replayed on admin calls. An empty
// string sends the request unauthenticated and lets the backend reject it.
type TokenProvider func() string

// Client is the HTTP implementation of the backend contract.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Tokens     TokenProvider
	Logger     *zap.Logger
}

// NewClient builds a client from the loaded application config.
func NewClient() *Client {
	cfg := config.AppConfig
	var limiter *rate.Limiter
	if cfg.MaxRequestsPerMin > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.MaxRequestsPerMin)), cfg.MaxRequestsPerMin)
	}
	return &Client{
		BaseURL: strings.TrimRight(cfg.BackendURL, "/"),
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.HTTPTimeout) * time.Second,
		},
		Limiter: limiter,
		Logger:  utils.GetLogger(),
	}
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		c.Logger = utils.GetLogger()
	}
	return c.Logger
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	return c.HTTPClient
}

// doJSON performs one request against the backend. Every call is tagged with
// the caller's context; there are no retries — a failed read is reported up
// and treated as "not bookable" by the caller.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.Tokens != nil {
		if token := c.Tokens(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if key, ok := idempotencyKeyFrom(ctx); ok {
		req.Header.Set("Idempotency-Key", key)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		c.logger().Warn("backend request failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Detail string `json:"detail"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil {
			apiErr.Detail = payload.Detail
		}
		c.logger().Warn("backend rejected request",
			zap.String("path", path), zap.Int("status", resp.StatusCode), zap.String("detail", apiErr.Detail))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type idempotencyKeyCtx struct{}

// WithIdempotencyKey tags the context so the next submission carries the key.
// The same draft keeps the same key across re-submissions of that draft.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

// IdempotencyKeyFromContext reads back a key set with WithIdempotencyKey.
func IdempotencyKeyFromContext(ctx context.Context) (string, bool) {
	return idempotencyKeyFrom(ctx)
}

func idempotencyKeyFrom(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(idempotencyKeyCtx{}).(string)
	return key, ok && key != ""
}
