package llm

import (
	"context"
	"encoding/json"
)

// Completer минимальный интерфейс клиента completions API.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}

type CompletionRequest struct {
	Model     string
	Prompt    string
	MaxTokens int
}

// Completion первый вариант ответа и учёт токенов.
// Usage хранится как есть, без разбора полей.
type Completion struct {
	Text  string
	Usage json.RawMessage
}
