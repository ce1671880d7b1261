package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrEmptyCompletion is returned when the backend responds successfully but
// produces no text. Callers can use it to tell "service up but produced
// nothing" from a transport failure.
var ErrEmptyCompletion = errors.New("completion backend returned an empty response")

// OllamaClient is an HTTP implementation of the Client interface against an
// Ollama-compatible /api/generate endpoint.
type OllamaClient struct {
	baseURL     string
	model       string
	temperature float64
	numPredict  int
	httpClient  *http.Client
}

// OllamaOptions configures an OllamaClient.
type OllamaOptions struct {
	Model       string
	Temperature float64
	NumPredict  int
	Timeout     time.Duration
}

// NewOllamaClient creates a new OllamaClient for the given base URL.
func NewOllamaClient(baseURL string, opts OllamaOptions) *OllamaClient {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OllamaClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       opts.Model,
		temperature: opts.Temperature,
		numPredict:  opts.NumPredict,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Complete sends the prompt to the backend and returns the raw completion
// text. The call is made once with the client's fixed timeout.
func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	requestBody, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: c.temperature,
			NumPredict:  c.numPredict,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/generate", bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach completion backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion backend returned status %d", resp.StatusCode)
	}

	var generated generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&generated); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if strings.TrimSpace(generated.Response) == "" {
		return "", ErrEmptyCompletion
	}

	return generated.Response, nil
}
