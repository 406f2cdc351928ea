// Package studyapi is the HTTP client for the remote Backend Study
// Service: start session, fetch next card, submit answer, complete.
// Scheduling lives entirely on the remote side; this client only speaks
// the contract.
package studyapi

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
)

const defaultTimeout = 30 * time.Second

// Client talks to one study service instance.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// NewClient creates a client for the service at baseURL. The token, when
// non-empty, is sent as a bearer credential on every request.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// StartSession requests a new session with the given card quotas.
func (c *Client) StartSession(ctx context.Context, newCardsLimit, reviewCardsLimit int) (*Session, error) {
	body := map[string]int{
		"new_cards_limit":    newCardsLimit,
		"review_cards_limit": reviewCardsLimit,
	}
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/v1/study/sessions", body, nil, &sess); err != nil {
		return nil, err
	}
	if sess.ID == "" {
		return nil, &ErrBadPayload{Err: fmt.Errorf("start response carried no session_id")}
	}
	return &sess, nil
}

// NextCard fetches the next card for the session, requesting the given
// quiz type. A nil Card with zero remaining means the session is done.
func (c *Client) NextCard(ctx context.Context, sessionID string, quizType QuizType) (*NextCard, error) {
	path := fmt.Sprintf("/v1/study/sessions/%s/next?quiz_type=%s",
		url.PathEscape(sessionID), url.QueryEscape(string(quizType)))
	var next NextCard
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// SubmitAnswer submits one answer. The idempotency key rides in a header
// so a retried unit cannot double-apply on a deduplicating backend.
func (c *Client) SubmitAnswer(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	path := fmt.Sprintf("/v1/study/sessions/%s/answers", url.PathEscape(req.SessionID))
	headers := map[string]string{}
	if req.IdempotencyKey != "" {
		headers["X-Idempotency-Key"] = req.IdempotencyKey
	}
	var result SubmitResult
	if err := c.do(ctx, http.MethodPost, path, req, headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CompleteSession closes the session and returns the authoritative
// summary. A session accepts no fetch or submit calls afterwards.
func (c *Client) CompleteSession(ctx context.Context, sessionID string) (*Completion, error) {
	path := fmt.Sprintf("/v1/study/sessions/%s/complete", url.PathEscape(sessionID))
	var comp Completion
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &comp); err != nil {
		return nil, err
	}
	return &comp, nil
}

// do performs one JSON round trip and maps failures onto the package
// error types.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &ErrUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ErrBadPayload{Err: err}
	}
	return nil
}
