package commands

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"PassKeeper/internal/config"
	"PassKeeper/internal/generator"
)

// withTempConfig возвращает конфиг, у которого база и файл токена лежат в temp.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DBPath:     filepath.Join(dir, "passwords.db"),
		TokenFile:  filepath.Join(dir, ".pk_token"),
		AuthSecret: "test-secret",
		GenLength:  generator.DefaultLength,
	}
}

// withInput подменяет In на время теста.
func withInput(t *testing.T, s string) {
	t.Helper()
	old := In
	In = strings.NewReader(s)
	t.Cleanup(func() { In = old })
}

// withTerminal подменяет проверку терминала и чтение пароля без эха.
func withTerminal(t *testing.T, password string) {
	t.Helper()
	oldIs, oldRead := isTerminal, readPassword
	isTerminal = func() bool { return true }
	readPassword = func() ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { isTerminal, readPassword = oldIs, oldRead })
}

// run выполняет команду и возвращает её вывод.
func run(t *testing.T, cmd Command, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var err error
	out := withStdoutCapture(t, func() { err = cmd.Run(context.Background(), cfg, args) })
	return out, err
}
