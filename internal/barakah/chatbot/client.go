// Package chatbot is a thin client for the chat-completion collaborator
// behind the Zakat assistant. One request in, one reply out; no retries or
// backoff, so upstream failures surface to the user as a visible error.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Roles used in conversation turns.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry in the ordered conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Config for the completion client.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type completionRequest struct {
	Model    string `json:"model"`
	Messages []Turn `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the system instruction plus conversation turns and returns
// the single assistant reply.
func (c *Client) Complete(ctx context.Context, system string, turns []Turn) (string, error) {
	messages := make([]Turn, 0, len(turns)+1)
	if system != "" {
		messages = append(messages, Turn{Role: RoleSystem, Content: system})
	}
	messages = append(messages, turns...)

	body, err := json.Marshal(completionRequest{Model: c.cfg.Model, Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chatbot: completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("chatbot: reading completion response: %w", err)
	}

	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("chatbot: decoding completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("chatbot: upstream error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("chatbot: upstream returned status %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chatbot: upstream returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
