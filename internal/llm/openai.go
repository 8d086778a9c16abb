package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"promptrelay/internal/config"
)

var (
	ErrInvalidModel    = errors.New("model is required")
	ErrEmptyCompletion = errors.New("empty response from model")
)

type OpenAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewOpenAIClient(apiKey string, cfg config.OpenAIConfig, httpClient *http.Client, logger *slog.Logger) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Complete выполняет один запрос к /completions, без повторов.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (Completion, error) {
	if req.Model == "" {
		return Completion{}, ErrInvalidModel
	}

	buf, err := json.Marshal(completionRequest{
		Model:     req.Model,
		Prompt:    req.Prompt,
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return Completion{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/completions", bytes.NewReader(buf))
	if err != nil {
		return Completion{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Completion{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Completion{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return Completion{}, newAPIError(resp.StatusCode, body)
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Completion{}, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return Completion{}, ErrEmptyCompletion
	}

	if c.logger != nil {
		c.logger.Debug("openai completion",
			slog.String("model", req.Model),
			slog.String("finish_reason", parsed.Choices[0].FinishReason))
	}

	return Completion{
		Text:  parsed.Choices[0].Text,
		Usage: parsed.Usage,
	}, nil
}

// APIError ответ OpenAI со статусом вне 2xx.
type APIError struct {
	StatusCode int
	Message    string
	Type       string
	Code       string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d status code (no body)", e.StatusCode)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		apiErr.Message = envelope.Error.Message
		apiErr.Type = envelope.Error.Type
		if envelope.Error.Code != nil {
			apiErr.Code = *envelope.Error.Code
		}
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}

type completionRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Text         string `json:"text"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage json.RawMessage `json:"usage"`
}

type errorResponse struct {
	Error *struct {
		Message string  `json:"message"`
		Type    string  `json:"type"`
		Code    *string `json:"code"`
	} `json:"error"`
}
