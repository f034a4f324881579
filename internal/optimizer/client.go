// Package optimizer talks to the external CP-SAT solver service over
// HTTP: the /generate and /check-feasibility endpoints. It never
// computes a schedule itself.
package optimizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/arnavshah/roster-feasibility/internal/wire"
)

// Client is a cancellable HTTP client bound to one optimizer base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// New builds a Client. timeout <= 0 falls back to 30s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// Configured reports whether an optimizer base URL was set.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Generate calls POST {baseURL}/generate with the given request body and
// decodes the response envelope.
func (c *Client) Generate(ctx context.Context, req wire.GenerateRequest) (*wire.GenerateResponse, error) {
	var resp wire.GenerateResponse
	if err := c.post(ctx, "/generate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckFeasibility calls POST {baseURL}/check-feasibility with the same
// request body minus optimization-only fields.
func (c *Client) CheckFeasibility(ctx context.Context, req wire.GenerateRequest) (*wire.CheckFeasibilityResponse, error) {
	var resp wire.CheckFeasibilityResponse
	req.LockedAssignments = nil
	if err := c.post(ctx, "/check-feasibility", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("optimizer: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("optimizer: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("optimizer: request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= 400 {
		return fmt.Errorf("optimizer: %s returned status %d", path, httpResp.StatusCode)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("optimizer: decode response: %w", err)
	}
	return nil
}
