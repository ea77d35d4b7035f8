// Package apiclient is the single choke point for calls against the content
// platform's REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"web3admin/infrastructure/tokenstore"
)

const maxResponseBytes = 8 << 20

// Client issues JSON requests and unwraps the response envelope.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  tokenstore.Store

	mu             sync.RWMutex
	onUnauthorized []func(ctx context.Context)
}

type Option func(*Client)

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func New(baseURL string, tokens tokenstore.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnUnauthorized registers fn to run after a 401 on an authenticated call,
// once the token store has been cleared.
func (c *Client) OnUnauthorized(fn func(ctx context.Context)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = append(c.onUnauthorized, fn)
}

// Public calls an endpoint that needs no credential.
func (c *Client) Public(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	return c.request(ctx, method, endpoint, body, false)
}

// Admin calls an endpoint with the stored bearer token attached.
func (c *Client) Admin(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	return c.request(ctx, method, endpoint, body, true)
}

func (c *Client) request(ctx context.Context, method, endpoint string, body any, requiresAuth bool) (json.RawMessage, error) {
	status, raw, err := c.do(ctx, method, endpoint, body, requiresAuth)
	if err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &TransportError{Method: method, Endpoint: endpoint, Status: status, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if !env.Success {
		return nil, env.failure(status)
	}
	return env.Data, nil
}

// do sends the request and returns the raw body. A 401 on an authenticated
// call never reaches the caller as a body.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, requiresAuth bool) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode %s %s body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return 0, nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if requiresAuth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return 0, nil, fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && requiresAuth {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		c.expire(ctx)
		return resp.StatusCode, nil, ErrUnauthorized
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Method: method, Endpoint: endpoint, Status: resp.StatusCode, Err: err}
	}
	return resp.StatusCode, raw, nil
}

func (c *Client) expire(ctx context.Context) {
	if err := c.tokens.ClearToken(ctx); err != nil {
		slog.Error("api client: clear token after 401 failed", slog.Any("err", err))
	}

	c.mu.RLock()
	hooks := append([]func(context.Context){}, c.onUnauthorized...)
	c.mu.RUnlock()
	for _, fn := range hooks {
		fn(ctx)
	}
}
