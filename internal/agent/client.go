// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package agent calls the Lyzr inference API. The agent is opaque: it
// receives a free-text message and an agent identifier, and answers
// with raw text that callers interpret.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/Lyzr-Apps/elegant-fresh-forge/pkg/types"
)

// defaultAPIBase is the Lyzr inference endpoint used when the config
// leaves Endpoint empty.
const defaultAPIBase = "https://agent-prod.studio.lyzr.ai/v3/inference/chat/"

const defaultUserID = "paper-summarizer"

// Client calls the Lyzr agent API.
type Client struct {
	cfg    types.AgentConfig
	client *http.Client
}

// NewClient builds a client from configuration. The HTTP client carries
// the configured timeout; zero means the call settles per the remote
// service's own contract.
func NewClient(cfg types.AgentConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// inferenceRequest is the request body for the Lyzr inference API.
type inferenceRequest struct {
	UserID    string `json:"user_id"`
	AgentID   string `json:"agent_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// inferenceResponse is the response body from the Lyzr inference API.
type inferenceResponse struct {
	Response string `json:"response"`
}

// Complete sends one message to the given agent and returns the raw
// text of its reply. Each call opens a fresh session; no retries are
// attempted.
func (c *Client) Complete(ctx context.Context, agentID, message string) (string, error) {
	reqBody := inferenceRequest{
		UserID:    c.userID(),
		AgentID:   agentID,
		SessionID: agentID + "-" + uuid.NewString(),
		Message:   message,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling agent API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("agent API returned %d: %s", resp.StatusCode, string(body))
	}

	var iResp inferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&iResp); err != nil {
		return "", fmt.Errorf("decoding agent response: %w", err)
	}

	if iResp.Response == "" {
		return "", fmt.Errorf("agent API returned empty response")
	}

	return iResp.Response, nil
}

func (c *Client) endpoint() string {
	if c.cfg.Endpoint != "" {
		return c.cfg.Endpoint
	}
	return defaultAPIBase
}

func (c *Client) userID() string {
	if c.cfg.UserID != "" {
		return c.cfg.UserID
	}
	return defaultUserID
}
