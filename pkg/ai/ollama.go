package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// OllamaService is the self-hosted provider, talking to an Ollama server's
// chat endpoint.
type OllamaService struct {
	getBaseURL func() string // Dynamic getter for BaseURL
	getModel   func() string // Dynamic getter for Model
	client     *http.Client
}

// NewOllamaService creates a new Ollama service
func NewOllamaService(baseURL, model string, timeout time.Duration) *OllamaService {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.2:3b"
	}
	return NewOllamaServiceWithGetters(
		func() string { return baseURL },
		func() string { return model },
		timeout,
	)
}

// NewOllamaServiceWithGetters creates a new Ollama service with dynamic getters
// so the endpoint can be changed at runtime.
func NewOllamaServiceWithGetters(getBaseURL, getModel func() string, timeout time.Duration) *OllamaService {
	return &OllamaService{
		getBaseURL: getBaseURL,
		getModel:   getModel,
		client:     &http.Client{Timeout: timeout},
	}
}

func (o *OllamaService) Name() ProviderType { return ProviderOllama }

// Complete implements Provider
func (o *OllamaService) Complete(ctx context.Context, prompt Prompt) (string, error) {
	url := o.getBaseURL() + "/api/chat"

	payload := map[string]interface{}{
		"model": o.getModel(),
		"messages": []map[string]string{
			{"role": "system", "content": prompt.System},
			{"role": "user", "content": prompt.User},
		},
		"stream": false,
		"options": map[string]interface{}{
			"temperature": 0.7,
			"num_predict": 500,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", o.fail(fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", o.fail(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", o.fail(fmt.Errorf("ollama request failed: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", o.fail(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", o.fail(fmt.Errorf("ollama API error (%d): %s", resp.StatusCode, string(respBody)))
	}

	if !gjson.ValidBytes(respBody) {
		return "", o.fail(fmt.Errorf("failed to parse response: invalid JSON"))
	}

	return gjson.GetBytes(respBody, "message.content").String(), nil
}

func (o *OllamaService) fail(err error) error {
	msg := MsgOllamaFailed
	if isConnectionError(err) {
		msg = MsgOllamaUnreachable
	}
	return &UpstreamError{Provider: ProviderOllama, Message: msg, Err: err}
}
