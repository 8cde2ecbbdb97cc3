// Package intakeclient is the client side of the intake API: a Client that
// posts form payloads, and a Form that carries the field values and the
// idle/submitting/success/error status a UI renders.
package intakeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Destination selects the intake endpoint.
type Destination string

const (
	Submissions Destination = "submissions"
	Contacts    Destination = "contacts"
)

// Receipt is the 201 body.
type Receipt struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	SubmissionID string `json:"submissionId"`
	// Replayed is set when the server answered from an earlier attempt.
	Replayed bool `json:"-"`
}

// APIError is a non-2xx answer decoded from the error envelope.
type APIError struct {
	Status    int      `json:"-"`
	RequestID string   `json:"request_id"`
	Code      string   `json:"code"`
	Message   string   `json:"error"`
	Missing   []string `json:"missing"`
	Invalid   []string `json:"invalid"`
	// RetryAfter is the Retry-After header in seconds, 0 when absent.
	RetryAfter int `json:"-"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("intake: %d %s: %s", e.Status, e.Code, msg)
}

// Temporary reports whether retrying the same request may succeed.
func (e *APIError) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// Client posts to one API base URL, e.g. https://api.bilacert.co.za/api/v1.
type Client struct {
	baseURL   string
	http      *http.Client
	maxTries  uint
	initial   time.Duration
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

// WithRetry sets the attempt budget and first backoff interval. Retries only
// happen for keyed requests, since only those are safe to repeat.
func WithRetry(maxTries uint, initial time.Duration) Option {
	return func(c *Client) {
		c.maxTries, c.initial = maxTries, initial
	}
}

// New returns a Client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: 10 * time.Second},
		maxTries:  3,
		initial:   500 * time.Millisecond,
		userAgent: "bilacert-intakeclient/1",
	}
	for _, o := range opts {
		o(c)
	}
	if c.maxTries < 1 {
		c.maxTries = 1
	}
	return c
}

// NewIdempotencyKey returns a fresh key for one logical submission.
func NewIdempotencyKey() string { return uuid.NewString() }

// Submit posts payload to dest. With a non-empty key, transport failures,
// 429 and 5xx answers are retried with exponential backoff; the server
// returns the first submission id for every repeat of the key.
func (c *Client) Submit(ctx context.Context, dest Destination, payload map[string]any, key string) (*Receipt, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("intake: encode payload: %w", err)
	}
	url := c.baseURL + "/" + string(dest)

	if key == "" {
		return c.post(ctx, url, body, "")
	}

	attempt := 0
	op := func() (*Receipt, error) {
		attempt++
		rec, err := c.post(ctx, url, body, key)
		if err == nil {
			return rec, nil
		}
		zerolog.Ctx(ctx).Debug().Err(err).Int("attempt", attempt).Str("destination", string(dest)).Msg("intake attempt failed")
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			switch {
			case !apiErr.Temporary():
				return nil, backoff.Permanent(err)
			case apiErr.RetryAfter > 0:
				// Wait as told, but keep the last answer for the caller.
				return nil, &retryAfter{apiErr: apiErr, next: backoff.RetryAfter(apiErr.RetryAfter)}
			}
		}
		return nil, err
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.initial
	rec, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(eb),
		backoff.WithMaxTries(c.maxTries),
	)
	var ra *retryAfter
	if errors.As(err, &ra) {
		err = ra.apiErr
	}
	return rec, err
}

// retryAfter carries a 429 through backoff: it unwraps to backoff's
// *RetryAfterError so the server's delay is honoured.
type retryAfter struct {
	apiErr *APIError
	next   error
}

func (r *retryAfter) Error() string { return r.apiErr.Error() }
func (r *retryAfter) Unwrap() error { return r.next }

func (c *Client) post(ctx context.Context, url string, body []byte, key string) (*Receipt, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK {
		var rec Receipt
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("intake: decode receipt: %w", err)
		}
		rec.Replayed = resp.Header.Get("Idempotent-Replay") == "true"
		return &rec, nil
	}

	apiErr := &APIError{Status: resp.StatusCode}
	_ = json.Unmarshal(raw, apiErr)
	if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs > 0 {
		apiErr.RetryAfter = secs
	}
	return nil, apiErr
}
