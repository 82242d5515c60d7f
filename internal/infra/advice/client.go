// Package advice calls the external text-completion service that turns a
// ledger snapshot summary into business advice.
package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// ErrNotConfigured is returned when no completion endpoint is configured.
var ErrNotConfigured = errors.New("advice generator not configured")

// Client is an HTTP client for the completion endpoint. Calls run behind a
// per-call timeout and a circuit breaker, so a degraded provider fails fast
// instead of stalling ledger requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	timeout    time.Duration
	cb         *gobreaker.CircuitBreaker
}

// NewClient creates a new advice client. baseURL may be empty; every call
// then returns ErrNotConfigured and the advisor serves its fallback.
func NewClient(httpClient *http.Client, baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    timeout,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "advice",
			MaxRequests: 3,
			Interval:    30 * time.Second,
			Timeout:     10 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 5 && failureRatio >= 0.6
			},
		}),
	}
}

type completionRequest struct {
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

// Generate sends the prompt to the completion endpoint and returns its text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.cb.Execute(func() (any, error) {
		body, err := json.Marshal(completionRequest{Prompt: prompt})
		if err != nil {
			return nil, err
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("advice API returned status %d", resp.StatusCode)
		}

		var completion completionResponse
		if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
			return nil, err
		}
		if completion.Text == "" {
			return nil, errors.New("advice API returned empty text")
		}
		return completion.Text, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
