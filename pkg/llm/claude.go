package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultClaudeBaseURL = "https://api.anthropic.com"
	DefaultClaudeModel   = "claude-sonnet-4-20250514"
	claudeAPIVersion     = "2023-06-01"
)

type Claude struct {
	apiKey  string
	baseURL string
	model   string
	client  *resty.Client
}

func NewClaude(apiKey, baseURL, model string) *Claude {
	if baseURL == "" {
		baseURL = DefaultClaudeBaseURL
	}
	if model == "" {
		model = DefaultClaudeModel
	}
	return &Claude{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		client:  resty.New(),
	}
}

func (c *Claude) Chat(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	body := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{{
			"role":    "user",
			"content": prompt,
		}},
		"max_tokens":  maxOutputTokens,
		"temperature": temperature,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", c.apiKey).
		SetHeader("anthropic-version", claudeAPIVersion).
		SetBody(body).
		Post(c.baseURL + "/v1/messages")
	if err != nil {
		return "", fmt.Errorf("%w: claude: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", fmt.Errorf("%w: claude: status %d: %s", ErrRequestFailed, resp.StatusCode(), resp.String())
	}

	// Minimal struct to pull out the content text.
	var claudeResp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(resp.Body(), &claudeResp); err != nil {
		return "", fmt.Errorf("%w: claude: decode response: %v", ErrRequestFailed, err)
	}
	if len(claudeResp.Content) == 0 || claudeResp.Content[0].Text == "" {
		return "", fmt.Errorf("%w from claude", ErrEmptyResponse)
	}
	return claudeResp.Content[0].Text, nil
}

func (c *Claude) Name() string { return string(ProviderClaude) }

func (c *Claude) Model() string { return c.model }
