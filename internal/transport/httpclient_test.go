package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"promptrelay/internal/middleware"
)

func TestClientForwardsRequestID(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(middleware.HeaderRequestID)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	client := NewHTTPClient(time.Second)
	ctx := middleware.WithRequestID(context.Background(), "req-42")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	resp.Body.Close()

	if got != "req-42" {
		t.Fatalf("expected forwarded request id, got %q", got)
	}
	if req.Header.Get(middleware.HeaderRequestID) != "" {
		t.Fatalf("original request must stay untouched")
	}
}

func TestClientWithoutRequestID(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(middleware.HeaderRequestID)
	}))
	t.Cleanup(server.Close)

	resp, err := NewHTTPClient(time.Second).Get(server.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()

	if got != "" {
		t.Fatalf("unexpected request id header: %q", got)
	}
}
