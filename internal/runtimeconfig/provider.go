package runtimeconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIKeyPath путь к ключу OpenAI во вложенном конфиге функции.
const APIKeyPath = "openai.apikey"

var ErrMissingAPIKey = errors.New("openai api key is not set")

// Provider источник вложенного runtime-конфига.
type Provider interface {
	Load() (Values, error)
}

// Values дерево значений runtime-конфига, как его отдаёт платформа.
type Values map[string]any

// String возвращает непустую строку по пути вида "openai.apikey".
func (v Values) String(path string) (string, bool) {
	var node any = map[string]any(v)
	for _, key := range strings.Split(path, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		node, ok = m[key]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Select выбирает источник один раз при старте: файл под эмулятором,
// хранилище платформы в остальных случаях.
func Select(emulator bool, filePath, envVar string) Provider {
	if emulator {
		return &FileProvider{Path: filePath}
	}
	return &EnvProvider{Var: envVar}
}

// APIKey читает ключ OpenAI из провайдера.
func APIKey(p Provider) (string, error) {
	values, err := p.Load()
	if err != nil {
		return "", fmt.Errorf("load runtime config: %w", err)
	}
	key, ok := values.String(APIKeyPath)
	if !ok {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

func decode(data []byte) (Values, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Values{}, nil
	}
	var values Values
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode runtime config: %w", err)
	}
	if values == nil {
		values = Values{}
	}
	return values, nil
}
