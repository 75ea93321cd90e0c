package ollama_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// client implements the provider interface against a local Ollama server.
type client struct {
	host       string
	model      string
	httpClient *http.Client
}

// request represents a request to the Ollama generate API.
type request struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

// response represents a response from the Ollama generate API.
type response struct {
	Response string `json:"response"`
}

// NewClient creates a new Ollama client.
func NewClient(host, model string, timeout time.Duration) *client {
	return &client{
		host:       strings.TrimRight(host, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	reqBody := request{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	}
	if jsonOutput {
		reqBody.Format = "json"
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.host+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	var ollamaResp response
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return ollamaResp.Response, nil
}
