package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptrelay/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOpenAIClient("sk-test", config.OpenAIConfig{BaseURL: server.URL + "/v1/"}, server.Client(), logger)
}

func TestCompleteSendsFixedRequest(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/completions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("unexpected auth header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"text":"  world  ","finish_reason":"stop"},{"text":"other"}],"usage":{"prompt_tokens":1,"completion_tokens":4,"total_tokens":5}}`))
	})

	out, err := client.Complete(context.Background(), CompletionRequest{
		Model:     CompletionModel,
		Prompt:    "Hello",
		MaxTokens: MaxCompletionTokens,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected exactly model, prompt, max_tokens, got %v", got)
	}
	if got["model"] != "text-davinci-003" || got["prompt"] != "Hello" || got["max_tokens"] != float64(100) {
		t.Fatalf("unexpected request body: %v", got)
	}
	if out.Text != "  world  " {
		t.Fatalf("text must not be trimmed by client, got %q", out.Text)
	}
	if string(out.Usage) != `{"prompt_tokens":1,"completion_tokens":4,"total_tokens":5}` {
		t.Fatalf("usage must be passed through, got %s", out.Usage)
	}
}

func TestCompleteAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	})

	_, err := client.Complete(context.Background(), CompletionRequest{Model: CompletionModel, Prompt: "hi"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Code != "invalid_api_key" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
	if err.Error() != "401 Incorrect API key provided" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestCompleteServerErrorIsNotRetried(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.Complete(context.Background(), CompletionRequest{Model: CompletionModel, Prompt: "hi"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected single call, got %d", calls)
	}
	if err.Error() != "503 upstream down" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestCompleteMalformedResponse(t *testing.T) {
	cases := map[string]string{
		"not json":   `<html>`,
		"no choices": `{"choices":[],"usage":{}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			if _, err := client.Complete(context.Background(), CompletionRequest{Model: CompletionModel, Prompt: "hi"}); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestCompleteRequiresModel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected")
	})
	if _, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hi"}); !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("expected ErrInvalidModel, got %v", err)
	}
}
