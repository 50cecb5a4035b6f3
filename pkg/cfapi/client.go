/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package cfapi is the platform REST client. Every call returns at once; the response
// is delivered later as a dispatched server action.
package cfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cloud-gov/cg-dashboard/pkg/actions"
	"github.com/cloud-gov/cg-dashboard/pkg/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/cloud-gov/cg-dashboard/pkg/cfapi"

// Client talks to the platform API on background goroutines and dispatches the
// results.
type Client struct {
	config   Config
	http     HTTPClient
	tokens   TokenProvider
	actions  *actions.Actions
	logger   logger.Logger
	observer RequestObserver
	tracer   trace.Tracer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option customizes a Client.
type Option func(*Client)

func WithHTTPClient(h HTTPClient) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenProvider(p TokenProvider) Option {
	return func(c *Client) { c.tokens = p }
}

func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithRequestObserver(o RequestObserver) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient validates cfg and returns a client dispatching through d. Without a
// WithTokenProvider option the token source follows cfg: client credentials when
// TokenURL is set, otherwise the static Token.
func NewClient(cfg Config, d actions.Dispatcher, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid api config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Client{
		config:  cfg,
		actions: actions.New(d),
		ctx:     ctx,
		cancel:  cancel,
		tracer:  logger.GetTracer(tracerName),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = logger.OrNop(c.logger)

	if c.http == nil {
		c.http = &http.Client{Timeout: time.Duration(cfg.Timeout)}
	}

	if c.tokens == nil {
		c.tokens = c.defaultTokenProvider()
	}

	return c, nil
}

func (c *Client) defaultTokenProvider() TokenProvider {
	if c.config.TokenURL == "" {
		return StaticToken(c.config.Token)
	}

	return NewCachedTokenProvider(&ClientCredentials{
		TokenURL:     c.config.TokenURL,
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		HTTPClient:   c.http,
	}, time.Duration(c.config.TokenTTL))
}

// Wait blocks until every background request has finished.
func (c *Client) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight requests and waits for their goroutines.
func (c *Client) Close() {
	c.cancel()
	c.wg.Wait()
}

// spawn runs fn on its own goroutine under the client's root context. A failure is
// logged and otherwise dropped: the matching received action is never dispatched.
func (c *Client) spawn(op, id string, fn func(ctx context.Context) error) {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		ctx, span := c.tracer.Start(c.ctx, "cfapi."+op, trace.WithAttributes(attribute.String("cf.guid", id)))
		defer span.End()

		if err := fn(ctx); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			c.logger.Error().
				Err(err).
				Str("operation", op).
				Str("guid", id).
				Msg("API request failed")
		}
	}()
}

type cfErrorBody struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	ErrorCode   string `json:"error_code"`
}

// do sends one request and decodes a 2xx JSON answer into out. path is either absolute
// or relative to the API root.
func (c *Client) do(ctx context.Context, endpoint, method, path string, body, out interface{}) error {
	var reader io.Reader

	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}

		reader = bytes.NewReader(buf)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.config.Timeout))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.GetAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", errAuthFailed, err)
	}

	if token != "" {
		req.Header.Set("Authorization", "bearer "+token)
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(endpoint, 0, start)
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	c.observe(endpoint, resp.StatusCode, start)

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("API request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		if inv, ok := c.tokens.(tokenInvalidator); ok {
			inv.InvalidateToken()
		}
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode}

	bodyBytes, _ := io.ReadAll(resp.Body)

	var cfErr cfErrorBody
	if json.Unmarshal(bodyBytes, &cfErr) == nil {
		statusErr.Description = cfErr.Description
		statusErr.ErrorCode = cfErr.ErrorCode
	}

	return statusErr
}

func (c *Client) observe(endpoint string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveAPIRequest(endpoint, status, time.Since(start))
	}
}

func (c *Client) resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return c.config.URL + path
}

// describe extracts what a failed create should show the user.
func describe(err error) (status int, message string) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		message = statusErr.Description
		if message == "" {
			message = http.StatusText(statusErr.StatusCode)
		}

		return statusErr.StatusCode, message
	}

	return 0, err.Error()
}
