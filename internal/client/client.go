// Package client posts questionnaire submissions to the send-email endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tinadigital/webquest/internal/questionnaire"
)

// Config holds the configuration for the submission client.
type Config struct {
	// Endpoint is the full URL of the send-email endpoint,
	// e.g. "https://example.com/api/send-email".
	Endpoint string

	// HTTPClient is an optional custom HTTP client.
	// If nil, a default client with a 15s timeout is used.
	HTTPClient *http.Client
}

func (c *Config) defaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
}

// Client sends answer sets to the endpoint. It is safe for concurrent use.
type Client struct {
	cfg Config
}

// New creates a new client with the given configuration.
func New(cfg Config) *Client {
	cfg.defaults()
	return &Client{cfg: cfg}
}

// SendResult is the acknowledgement of a delivered submission.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}

// SendAnswers posts sub and returns the endpoint's acknowledgement.
// A non-2xx response is returned as *APIError.
func (c *Client) SendAnswers(ctx context.Context, sub questionnaire.Submission) (*SendResult, error) {
	data, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("client: failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("client: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	var result SendResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("client: failed to parse response: %w", err)
	}
	if !result.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "endpoint reported failure"}
	}
	return &result, nil
}

// Submit implements questionnaire.Submitter.
func (c *Client) Submit(ctx context.Context, sub questionnaire.Submission) (string, error) {
	res, err := c.SendAnswers(ctx, sub)
	if err != nil {
		return "", err
	}
	return res.MessageID, nil
}
