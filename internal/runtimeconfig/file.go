package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
)

// FileProvider читает .runtimeconfig.json, который эмулятор кладёт рядом с функцией.
type FileProvider struct {
	Path string
}

func (p *FileProvider) Load() (Values, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Values{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", p.Path, err)
	}
	return decode(data)
}
