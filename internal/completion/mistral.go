package completion

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
)

const (
	DefaultBaseURL = "https://api.mistral.ai/v1"
	DefaultModel   = "mistral-small-latest"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// MistralClient calls the Mistral chat completions endpoint.
type MistralClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

// MistralConfig configures NewMistralClient. Zero values fall back to the
// package defaults.
type MistralConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

func NewMistralClient(cfg MistralConfig) (*MistralClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("mistral api key is missing")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &MistralClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
	}, nil
}

// Model returns the chat model used for completions.
func (c *MistralClient) Model() string { return c.model }

// Complete sends prompt as a single user message and returns the content of
// the first choice. There is no retry.
func (c *MistralClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", &ProviderError{Message: "marshal request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &ProviderError{Message: "build request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Message: "http request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", decodeAPIError(resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &ProviderError{Message: "decode response", Err: err}
	}
	if len(out.Choices) == 0 {
		return "", &ProviderError{Message: "response contained no choices"}
	}
	return out.Choices[0].Message.Content, nil
}

// decodeAPIError reads the provider's error body. Mistral answers with either
// {"message": ...} or an OpenAI style {"error": {"message", "code"}} object.
func decodeAPIError(resp *http.Response) *ProviderError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	pe := &ProviderError{StatusCode: resp.StatusCode}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err == nil {
		src := raw
		if nested, ok := raw["error"].(map[string]any); ok {
			src = nested
		}
		if msg, ok := src["message"].(string); ok {
			pe.Message = msg
		}
		switch code := src["code"].(type) {
		case string:
			pe.Code = code
		case float64:
			pe.Code = fmt.Sprintf("%.0f", code)
		}
	}
	if pe.Message == "" {
		pe.Message = strings.TrimSpace(string(body))
	}
	if pe.Message == "" {
		pe.Message = http.StatusText(resp.StatusCode)
	}
	return pe
}
