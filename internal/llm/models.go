package llm

const (
	// CompletionModel legacy-модель endpoint'а /completions.
	CompletionModel = "text-davinci-003"
	// MaxCompletionTokens ограничение длины ответа.
	MaxCompletionTokens = 100
)
