// Package openai implements the stylist recommendation collaborator
// against an OpenAI-compatible chat-completions endpoint.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/domain"
)

// ErrNotConfigured indicates the client was built without an API key.
var ErrNotConfigured = errors.New("openai: api key not configured")

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o-mini"
)

// Client calls a chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

var _ domain.StylistModel = (*Client)(nil)

// New creates a client for the live API. An empty key yields a client
// whose completions fail with ErrNotConfigured; callers fall back to
// canned advice.
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, defaultBaseURL, &http.Client{Timeout: 30 * time.Second})
}

// NewWithBaseURL creates a client against a custom endpoint, for tests
// and compatible self-hosted models.
func NewWithBaseURL(apiKey, baseURL string, httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient, apiKey: apiKey, baseURL: baseURL, model: defaultModel}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Complete sends a system+user prompt pair and returns the first choice.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(struct {
		Model    string        `json:"model"`
		Messages []chatMessage `json:"messages"`
	}{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: complete: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai: completion returned %s", resp.Status)
	}

	var body struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(body.Choices) == 0 {
		return "", errors.New("openai: empty completion")
	}
	return body.Choices[0].Message.Content, nil
}
