package runtimeconfig

import "os"

// EnvProvider читает конфиг, который платформа передаёт JSON-строкой в переменной окружения.
type EnvProvider struct {
	Var string
}

func (p *EnvProvider) Load() (Values, error) {
	raw, ok := os.LookupEnv(p.Var)
	if !ok {
		return Values{}, nil
	}
	return decode([]byte(raw))
}
