package transport

import (
	"net"
	"net/http"
	"time"

	"promptrelay/internal/middleware"
)

// NewHTTPClient возвращает http.Client для исходящих запросов к провайдеру.
// Таймаут клиента единственное ограничение времени вызова.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &requestIDTransport{
			base: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   5 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// requestIDTransport пробрасывает X-Request-ID входящего вызова в исходящий запрос.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := middleware.RequestIDFromContext(req.Context())
	if id == "" || req.Header.Get(middleware.HeaderRequestID) != "" {
		return t.base.RoundTrip(req)
	}
	// RoundTrip не должен менять исходный запрос.
	clone := req.Clone(req.Context())
	clone.Header.Set(middleware.HeaderRequestID, id)
	return t.base.RoundTrip(clone)
}
