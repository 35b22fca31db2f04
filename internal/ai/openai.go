package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fitforge/fitness-app/internal/config"
)

// Errors returned by the OpenAI client.
var (
	ErrNoChoices   = errors.New("no choices in model response")
	ErrBadResponse = errors.New("could not decode model response")
)

// Client calls the OpenAI chat-completions endpoint directly over HTTP.
// There is no retry policy; a failed call is the caller's cue to fall back
// to the template generator.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a chat-completions client from config. Returns nil when no
// API key is configured, which callers treat as "fallback generation only".
func NewClient(cfg config.OpenAIConfig) *Client {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://api.openai.com"
	}
	return &Client{
		apiKey:  key,
		model:   model,
		baseURL: base,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float32        `json:"temperature,omitempty"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GeneratePlan sends the prompt and parses the JSON object the model returns.
// Only the top-level fields are interpreted; the weeks payload stays raw.
func (c *Client) GeneratePlan(ctx context.Context, prompt string) (*GeneratedPlan, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a certified fitness coach. You must output valid JSON only. Never include markdown code fences."},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.7,
		ResponseFormat: map[string]any{"type": "json_object"},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	slurp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("openai returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(slurp)))
	}

	var chat chatResponse
	if err := json.Unmarshal(slurp, &chat); err != nil {
		return nil, ErrBadResponse
	}
	if len(chat.Choices) == 0 {
		return nil, ErrNoChoices
	}

	content := strings.TrimSpace(chat.Choices[0].Message.Content)

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("model did not return valid plan JSON: %w", err)
	}
	return &plan, nil
}
