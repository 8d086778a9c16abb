package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"promptrelay/internal/callable"
	"promptrelay/internal/llm"
)

const (
	msgInvalidPrompt = "プロンプトは文字列で指定してください。"
	msgUpstreamError = "OpenAI APIでエラーが発生しました。"
)

// Result успешный ответ generateText.
type Result struct {
	Success bool            `json:"success"`
	Result  string          `json:"result"`
	Usage   json.RawMessage `json:"usage"`
}

// Handler пересылает prompt в completions API. Состояния между вызовами нет.
type Handler struct {
	completer llm.Completer
	logger    *slog.Logger
}

func New(completer llm.Completer, logger *slog.Logger) *Handler {
	return &Handler{completer: completer, logger: logger}
}

// GenerateText реализует callable-функцию generateText.
func (h *Handler) GenerateText(ctx context.Context, data json.RawMessage, inv callable.Invocation) (any, error) {
	req, err := parseRequest(data)
	if err != nil {
		h.logger.Debug("prompt rejected",
			slog.String("error", err.Error()),
			slog.String("request_id", inv.RequestID))
		return nil, callable.NewError(callable.CodeInvalidArgument, msgInvalidPrompt, "")
	}

	completion, err := h.completer.Complete(ctx, llm.CompletionRequest{
		Model:     llm.CompletionModel,
		Prompt:    req.Prompt,
		MaxTokens: llm.MaxCompletionTokens,
	})
	if err != nil {
		h.logger.Error("openai api error",
			slog.String("error", err.Error()),
			slog.String("request_id", inv.RequestID))
		return nil, callable.NewError(callable.CodeInternal, msgUpstreamError, err.Error())
	}

	usage := completion.Usage
	if len(usage) == 0 {
		usage = json.RawMessage("null")
	}

	return Result{
		Success: true,
		Result:  strings.TrimSpace(completion.Text),
		Usage:   usage,
	}, nil
}
