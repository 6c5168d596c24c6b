// Package api implements the typed REST client for the Smart Bill backend.
// One method per endpoint; every call builds its URL from the configured
// base, attaches the bearer token unless the endpoint is anonymous, and
// converts non-2xx responses into a *Error carrying the backend's message
// field (or a fixed per-call default when the body has none).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Venkatesh1410/smartbill/internal/logging"
)

// Fallback messages, carried over verbatim from the web client's call sites.
const (
	msgGenericFailure = "Something went wrong"
	msgMutateFailure  = "Something went wrong!!"
	msgLoginFailure   = "Login Failed"
	msgSignupFailure  = "Registration failed"
)

const defaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token, or "" when no session is
// held. Satisfied by *session.Manager.
type TokenSource interface {
	BearerToken(ctx context.Context) string
}

// Client talks to the Smart Bill backend. It performs no retries; a single
// failed attempt surfaces directly to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func New(baseURL string, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		log:     log,
	}
}

// call describes a single request. fallback is the error message used when
// the failure body carries no usable {message} field. anonymous requests
// (login, signup, forgot-password) omit the Authorization header.
type call struct {
	method    string
	path      string
	query     url.Values
	body      any
	anonymous bool
	fallback  string
}

// errorBody is the failure shape the backend is expected to return.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, cl call, out any) error {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var reqBody io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if !cl.anonymous {
		if token := c.tokens.BearerToken(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", cl.method, cl.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.failure(ctx, cl, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) failure(ctx context.Context, cl call, resp *http.Response) error {
	fallback := cl.fallback
	if fallback == "" {
		fallback = msgGenericFailure
	}

	msg := fallback
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil && eb.Message != "" {
		msg = eb.Message
	}

	c.log.Warn(ctx, "api call failed",
		"method", cl.method, "path", cl.path, "status", resp.StatusCode, "message", msg)
	return &Error{StatusCode: resp.StatusCode, Message: msg}
}
