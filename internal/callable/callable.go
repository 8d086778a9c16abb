package callable

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"promptrelay/internal/httpserver"
	"promptrelay/internal/middleware"
)

// Invocation контекст вызывающего. Логика функций его не использует,
// он часть соглашения о вызове.
type Invocation struct {
	AuthToken     string
	InstanceToken string
	AppCheckToken string
	RequestID     string
}

// Func функция, вызываемая через callable-протокол.
type Func func(ctx context.Context, data json.RawMessage, inv Invocation) (any, error)

type requestEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type resultEnvelope struct {
	Result any `json:"result"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Status  string `json:"status"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Handle превращает Func в http.Handler.
func Handle(fn Func, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := decodeRequest(r)
		if err != nil {
			logger.Warn("invalid callable request",
				slog.String("error", err.Error()),
				slog.String("request_id", middleware.RequestIDFromContext(r.Context())))
			writeError(w, NewError(CodeInvalidArgument, "Bad Request", ""))
			return
		}

		result, err := fn(r.Context(), data, invocationFromRequest(r))
		if err != nil {
			var callErr *Error
			if !errors.As(err, &callErr) {
				logger.Error("unhandled callable error",
					slog.String("error", err.Error()),
					slog.String("request_id", middleware.RequestIDFromContext(r.Context())))
				callErr = NewError(CodeInternal, "INTERNAL", "")
			}
			writeError(w, callErr)
			return
		}

		httpserver.WriteJSON(w, http.StatusOK, resultEnvelope{Result: result})
	})
}

func decodeRequest(r *http.Request) (json.RawMessage, error) {
	if r.Method != http.MethodPost {
		return nil, errors.New("method must be POST")
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return nil, errors.New("content type must be application/json")
	}

	var env requestEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, errors.New("body is missing data field")
	}
	return env.Data, nil
}

func invocationFromRequest(r *http.Request) Invocation {
	inv := Invocation{
		InstanceToken: r.Header.Get("Firebase-Instance-ID-Token"),
		AppCheckToken: r.Header.Get("X-Firebase-AppCheck"),
		RequestID:     middleware.RequestIDFromContext(r.Context()),
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		inv.AuthToken = strings.TrimPrefix(auth, "Bearer ")
	}
	return inv
}

func writeError(w http.ResponseWriter, e *Error) {
	httpserver.WriteJSON(w, e.Code.HTTPStatus(), errorEnvelope{
		Error: errorBody{
			Status:  e.Code.Status(),
			Code:    e.Code,
			Message: e.Message,
			Details: e.Details,
		},
	})
}
