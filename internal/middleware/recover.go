package middleware

import (
	"log/slog"
	"net/http"
)

// Recover перехватывает panic и отвечает ошибкой internal в формате callable-протокола.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						slog.Any("error", rec),
						slog.String("path", r.URL.Path),
						slog.String("request_id", RequestIDFromContext(r.Context())))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":{"status":"INTERNAL","code":"internal","message":"INTERNAL"}}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
