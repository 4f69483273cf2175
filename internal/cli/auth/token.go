package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken - файл токена отсутствует или пуст.
var ErrNoToken = errors.New("no saved token")

// SaveToken writes token to the token file, creating its directory if needed.
func SaveToken(path, token string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(token+"\n"), 0o600)
}

// LoadToken reads token from the token file.
func LoadToken(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", err
	}
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", ErrNoToken
	}
	return tok, nil
}
