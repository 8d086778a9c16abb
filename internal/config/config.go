package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr       string
	LogLevel       string
	RequestTimeout time.Duration
	OpenAI         OpenAIConfig
	Runtime        RuntimeConfig
}

type OpenAIConfig struct {
	BaseURL string
}

// RuntimeConfig описывает, откуда читать вложенный конфиг функции.
type RuntimeConfig struct {
	Emulator bool
	FilePath string
	EnvVar   string
}

func Load() (Config, error) {
	var cfg Config

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	reqTimeout, err := parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = reqTimeout

	cfg.OpenAI = OpenAIConfig{
		BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
	}

	emulator, err := parseBoolDefault(getEnv("FUNCTIONS_EMULATOR", ""), false)
	if err != nil {
		return Config{}, fmt.Errorf("parse FUNCTIONS_EMULATOR: %w", err)
	}
	cfg.Runtime = RuntimeConfig{
		Emulator: emulator,
		FilePath: getEnv("RUNTIME_CONFIG_PATH", ".runtimeconfig.json"),
		EnvVar:   getEnv("RUNTIME_CONFIG_ENV", "CLOUD_RUNTIME_CONFIG"),
	}

	return cfg, nil
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	return time.ParseDuration(value)
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

// parseBoolDefault parses optional boolean with default value.
func parseBoolDefault(value string, def bool) (bool, error) {
	if value == "" {
		return def, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, err
	}
	return parsed, nil
}
