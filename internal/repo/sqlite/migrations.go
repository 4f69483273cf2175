package sqlite

import (
	_ "embed"
)

// Встроенная схема клиента (SQLite). Выполняется идемпотентно.
//
//go:embed migrations/001_init.sql
var initDDL string

func initialDDL() string { return initDDL }
