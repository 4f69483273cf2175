package model

import (
	"fmt"
	"strings"
)

// PasswordMask - то, что показывается вместо пароля, пока ShowPass выключен.
const PasswordMask = "******"

// Fields - редактируемые пользователем поля учётной записи.
type Fields struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
	Note     string `json:"note"` // необязательное поле
}

// NewRecord - запись, ещё не сохранённая в хранилище (без id).
type NewRecord struct {
	Fields
}

// StoredRecord - сохранённая запись; ID назначается хранилищем и больше не меняется.
type StoredRecord struct {
	ID int64 `json:"id"`
	Fields
}

// Record - запись в том виде, в каком её отдаёт FetchAll.
// ShowPass не хранится в БД и после каждой выборки равен false.
type Record struct {
	StoredRecord
	ShowPass bool `json:"showPass"`
}

// DisplayPassword возвращает пароль или маску в зависимости от ShowPass.
func (r Record) DisplayPassword() string {
	if r.ShowPass {
		return r.Password
	}
	return PasswordMask
}

// ShareText форматирует запись для отправки через "поделиться".
func (f Fields) ShareText() string {
	return fmt.Sprintf("URL: %s\nUsername: %s\nPassword: %s \nNote: %s", f.URL, f.Username, f.Password, f.Note)
}

// Matches - регистронезависимый поиск подстроки по url, username и note.
// Пустой запрос совпадает с любой записью.
func (f Fields) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(f.URL), q) ||
		strings.Contains(strings.ToLower(f.Username), q) ||
		strings.Contains(strings.ToLower(f.Note), q)
}
