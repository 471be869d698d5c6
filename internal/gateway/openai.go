package gateway

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenAICompleter talks to any OpenAI-compatible chat completions endpoint.
type OpenAICompleter struct {
	client *resty.Client
	model  string
}

func NewOpenAICompleter(baseURL, apiKey, model string) *OpenAICompleter {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
	return &OpenAICompleter{client: client, model: model}
}

func (c *OpenAICompleter) Name() string { return "openai" }

func (c *OpenAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]map[string]string, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.System})
	}
	for _, m := range req.Messages {
		messages = append(messages, map[string]string{"role": m.Role, "content": m.Content})
	}

	body := map[string]interface{}{
		"model":    c.model,
		"messages": messages,
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}
	if req.JSON {
		body["response_format"] = map[string]string{"type": "json_object"}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("completion request failed with status %d: %s", resp.StatusCode(), msg)
	}

	return gjson.Get(resp.String(), "choices.0.message.content").String(), nil
}
