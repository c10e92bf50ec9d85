package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	defaultOpenAIEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel    = "gpt-4o-mini"
)

// OpenAIProvider generates stories via an OpenAI-compatible chat
// completions endpoint. Secondary entry in the fallback chain.
type OpenAIProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// OpenAIOptions configures the OpenAI provider. Endpoint is injectable
// so tests and compatible gateways can point elsewhere.
type OpenAIOptions struct {
	APIKey   string
	Model    string
	Endpoint string
}

// NewOpenAIProvider creates an OpenAI provider. An empty API key yields
// a provider that reports itself unavailable.
func NewOpenAIProvider(opts OpenAIOptions) *OpenAIProvider {
	model := opts.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaultOpenAIEndpoint
	}

	return &OpenAIProvider{
		apiKey:   opts.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Available() bool {
	return p.apiKey != ""
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt Prompt) (*StoryPayload, error) {
	reqBody := map[string]interface{}{
		"model": p.model,
		"messages": []map[string]string{
			{"role": "system", "content": prompt.System},
			{"role": "user", "content": prompt.User},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &ResponseError{Provider: p.Name(), Reason: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &ResponseError{Provider: p.Name(), Reason: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &TransientError{Provider: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return nil, &TransientError{Provider: p.Name(), Err: err}
		}
		return nil, &ResponseError{Provider: p.Name(), Reason: "api error", Err: err}
	}

	var apiResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, &ResponseError{Provider: p.Name(), Reason: "decode response", Err: err}
	}
	if len(apiResponse.Choices) == 0 {
		return nil, &ResponseError{Provider: p.Name(), Reason: "empty response"}
	}

	payload, err := ParseStoryJSON(apiResponse.Choices[0].Message.Content)
	if err != nil {
		return nil, &ResponseError{Provider: p.Name(), Reason: "unparseable story", Err: err}
	}
	return payload, nil
}
