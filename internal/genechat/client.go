// Package genechat asks a chat-completion model to explain the biology
// of the ranked hub genes.
package genechat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/seqlab/prothub/internal/telemetry"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1/chat/completions"
	DefaultModel   = "gpt-4"

	// NoHubsMessage is returned verbatim for an empty hub list; no
	// remote call is made in that case.
	NoHubsMessage = "No hub genes found."

	systemPrompt = "You are a helpful bioinformatics assistant."

	maxTokens   = 500
	temperature = 0.7
)

// Config carries the completion-service credential and endpoint. The key
// is passed in explicitly; nothing in this package reads global state.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

type Client struct {
	cfg        Config
	HTTPClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ExplainHubs builds the prompt naming the hub genes and returns the
// model's trimmed reply. Every failure is caught and surfaced as inline
// text; this method never propagates an error to the caller.
func (c *Client) ExplainHubs(ctx context.Context, hubs []string) string {
	if len(hubs) == 0 {
		return NoHubsMessage
	}

	text, err := c.complete(ctx, hubs)
	if err != nil {
		return fmt.Sprintf("GeneChat error: %v", err)
	}
	return text
}

func (c *Client) complete(ctx context.Context, hubs []string) (string, error) {
	ctx, span := telemetry.Tracer("prothub/genechat").Start(ctx, "genechat.complete")
	defer span.End()
	span.SetAttributes(attribute.Int("hub_count", len(hubs)))

	prompt := fmt.Sprintf(
		"Explain the biological significance and potential functions of these hub genes in a protein-protein interaction network:\n%s",
		strings.Join(hubs, ", "),
	)

	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion service: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-200 status from completion service: %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
