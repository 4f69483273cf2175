package commands

import (
	"strings"
	"testing"

	"PassKeeper/internal/cli/auth"
	"PassKeeper/internal/generator"
	"PassKeeper/internal/middleware"
	"PassKeeper/internal/model"
	"PassKeeper/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestGen(t *testing.T) {
	cfg := withTempConfig(t)

	out, err := run(t, genCmd{}, cfg)
	require.NoError(t, err)
	pw := strings.TrimSpace(out)
	assert.Len(t, pw, generator.DefaultLength)
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(generator.Pool(generator.DefaultFlags()), r))
	}

	out, err = run(t, genCmd{}, cfg, "--length", "20", "--symbols", "--count", "3")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 3)
	for _, l := range got {
		assert.Len(t, l, 20)
	}

	out, err = run(t, genCmd{}, cfg, "--no-upper", "--no-lower")
	require.NoError(t, err)
	for _, r := range strings.TrimSpace(out) {
		assert.True(t, strings.ContainsRune(generator.Digits, r))
	}
}

func TestGen_Errors(t *testing.T) {
	cfg := withTempConfig(t)

	_, err := run(t, genCmd{}, cfg, "--length", "3")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = run(t, genCmd{}, cfg, "--no-upper", "--no-lower", "--no-digits")
	assert.ErrorIs(t, err, generator.ErrInvalidConfiguration)

	_, err = run(t, genCmd{}, cfg, "extra")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = run(t, genCmd{}, cfg, "--count", "0")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = run(t, genCmd{}, cfg, "--bogus")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestAddListShowShare(t *testing.T) {
	cfg := withTempConfig(t)

	out, err := run(t, addCmd{}, cfg, "--url", "example.com", "--username", "alice", "--password", "p@ss1", "--note", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "id:       1")
	assert.Contains(t, out, "password: <set>")
	assert.NotContains(t, out, "p@ss1")

	out, err = run(t, listCmd{}, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, model.PasswordMask)
	assert.NotContains(t, out, "p@ss1")
	assert.Contains(t, out, "Всего: 1")

	out, err = run(t, listCmd{}, cfg, "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "p@ss1")

	out, err = run(t, showCmd{}, cfg, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "password: p@ss1")
	assert.Contains(t, out, "note:     work")

	out, err = run(t, shareCmd{}, cfg, "1")
	require.NoError(t, err)
	assert.Equal(t, "URL: example.com\nUsername: alice\nPassword: p@ss1 \nNote: work\n", out)
}

func TestList_EmptyAndSearch(t *testing.T) {
	cfg := withTempConfig(t)

	out, err := run(t, listCmd{}, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Нет записей")

	_, err = run(t, addCmd{}, cfg, "--url", "github.com", "--username", "alice", "--password", "x")
	require.NoError(t, err)
	_, err = run(t, addCmd{}, cfg, "--url", "bank.example", "--username", "bob", "--password", "y")
	require.NoError(t, err)

	out, err = run(t, listCmd{}, cfg, "--search", "GIT")
	require.NoError(t, err)
	assert.Contains(t, out, "github.com")
	assert.NotContains(t, out, "bank.example")

	out, err = run(t, listCmd{}, cfg, "--search", "nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "Нет записей")

	_, err = run(t, listCmd{}, cfg, "extra")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestAdd_GenerateAndPrompt(t *testing.T) {
	cfg := withTempConfig(t)

	out, err := run(t, addCmd{}, cfg, "--url", "a.com", "--username", "u", "--generate", "--length", "12")
	require.NoError(t, err)
	var generated string
	for _, l := range lines(out) {
		if v, ok := strings.CutPrefix(strings.TrimSpace(l), "password: "); ok {
			generated = v
		}
	}
	assert.Len(t, generated, 12)

	out, err = run(t, showCmd{}, cfg, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "password: "+generated)

	// пароль из stdin, когда это не терминал
	withInput(t, "typed-secret\n")
	_, err = run(t, addCmd{}, cfg, "--url", "b.com", "--username", "u")
	require.NoError(t, err)
	out, err = run(t, showCmd{}, cfg, "2")
	require.NoError(t, err)
	assert.Contains(t, out, "password: typed-secret")

	// пароль с терминала без эха
	withTerminal(t, "hidden")
	_, err = run(t, addCmd{}, cfg, "--url", "c.com", "--username", "u")
	require.NoError(t, err)
	out, err = run(t, showCmd{}, cfg, "3")
	require.NoError(t, err)
	assert.Contains(t, out, "password: hidden")
}

func TestAdd_Errors(t *testing.T) {
	cfg := withTempConfig(t)

	_, err := run(t, addCmd{}, cfg, "--username", "u", "--password", "p")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = run(t, addCmd{}, cfg, "--url", "a", "--username", "u", "--password", "p", "--generate")
	assert.ErrorIs(t, err, ErrUsage)

	// пустой ввод пароля - ошибка валидации сервиса
	withInput(t, "\n")
	_, err = run(t, addCmd{}, cfg, "--url", "a", "--username", "u")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestEdit(t *testing.T) {
	cfg := withTempConfig(t)
	_, err := run(t, addCmd{}, cfg, "--url", "example.com", "--username", "alice", "--password", "old", "--note", "n")
	require.NoError(t, err)

	out, err := run(t, editCmd{}, cfg, "--password", "new", "--note", "", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated: 1")

	out, err = run(t, showCmd{}, cfg, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "url:      example.com")
	assert.Contains(t, out, "password: new")
	assert.Contains(t, out, "note:     \n")

	out, err = run(t, editCmd{}, cfg, "--generate", "--length", "30", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "password: ")

	_, err = run(t, editCmd{}, cfg, "--url", "x", "99")
	assert.ErrorIs(t, err, service.ErrNotFound)
	_, err = run(t, editCmd{}, cfg, "1")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = run(t, editCmd{}, cfg, "--url", "x")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = run(t, editCmd{}, cfg, "--url", "x", "abc")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = run(t, editCmd{}, cfg, "--username", "", "1")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestShowShare_NotFoundAndUsage(t *testing.T) {
	cfg := withTempConfig(t)

	_, err := run(t, showCmd{}, cfg, "7")
	assert.ErrorIs(t, err, service.ErrNotFound)
	_, err = run(t, shareCmd{}, cfg, "7")
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = run(t, showCmd{}, cfg)
	assert.ErrorIs(t, err, ErrUsage)
	_, err = run(t, shareCmd{}, cfg, "0")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestDelete(t *testing.T) {
	cfg := withTempConfig(t)
	_, err := run(t, addCmd{}, cfg, "--url", "a", "--username", "u", "--password", "p")
	require.NoError(t, err)

	// отказ в подтверждении ничего не удаляет
	withInput(t, "n\n")
	out, err := run(t, deleteCmd{}, cfg, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Are you sure you want to delete this password?")
	assert.Contains(t, out, "Отменено")
	_, err = run(t, showCmd{}, cfg, "1")
	require.NoError(t, err)

	withInput(t, "y\n")
	out, err = run(t, deleteCmd{}, cfg, "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted: 1")

	_, err = run(t, deleteCmd{}, cfg, "--yes", "1")
	assert.ErrorIs(t, err, service.ErrNotFound)
	_, err = run(t, deleteCmd{}, cfg, "--yes")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestReset(t *testing.T) {
	cfg := withTempConfig(t)
	for _, u := range []string{"a", "b"} {
		_, err := run(t, addCmd{}, cfg, "--url", u, "--username", u, "--password", u)
		require.NoError(t, err)
	}

	withInput(t, "\n")
	out, err := run(t, resetCmd{}, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Отменено")

	out, err = run(t, resetCmd{}, cfg, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All passwords deleted")

	out, err = run(t, listCmd{}, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Нет записей")

	// после сброса база снова принимает записи
	_, err = run(t, addCmd{}, cfg, "--url", "c", "--username", "c", "--password", "c")
	require.NoError(t, err)
}

func TestAPIToken(t *testing.T) {
	cfg := withTempConfig(t)

	out, err := run(t, apiTokenCmd{}, cfg)
	require.NoError(t, err)
	tok := strings.TrimSpace(out)
	_, err = middleware.ParseToken(cfg.AuthSecret, tok)
	require.NoError(t, err)

	saved, err := auth.LoadToken(cfg.TokenFile)
	require.NoError(t, err)
	assert.Equal(t, tok, saved)

	// действующий токен переиспользуется
	out, err = run(t, apiTokenCmd{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, tok, strings.TrimSpace(out))

	// после смены секрета выпускается новый токен
	cfg.AuthSecret = "rotated"
	out, err = run(t, apiTokenCmd{}, cfg)
	require.NoError(t, err)
	_, err = middleware.ParseToken("rotated", strings.TrimSpace(out))
	assert.NoError(t, err)

	out, err = run(t, apiTokenCmd{}, cfg, "--renew", "--ttl", "1h")
	require.NoError(t, err)
	_, err = middleware.ParseToken("rotated", strings.TrimSpace(out))
	assert.NoError(t, err)

	_, err = run(t, apiTokenCmd{}, cfg, "--ttl", "0s")
	assert.ErrorIs(t, err, ErrUsage)
}
