package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"PassKeeper/internal/model"
	"PassKeeper/internal/repo"

	_ "modernc.org/sqlite"
)

// MemoryPath открывает БД в памяти (для тестов и разовых запусков).
const MemoryPath = ":memory:"

// CredentialRepositorySQLite - хранилище паролей в локальном файле SQLite.
// Владеет единственным соединением с БД.
type CredentialRepositorySQLite struct {
	db   *sql.DB
	path string
}

var _ repo.CredentialRepository = (*CredentialRepositorySQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД по указанному пути.
// Схема не создаётся: для этого нужен Migrate.
func Open(ctx context.Context, path string) (*CredentialRepositorySQLite, error) {
	if path == "" {
		return nil, errors.New("empty database path")
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, &repo.StoreError{Op: "open", Err: err}
		}
	}
	dsn, err := buildDSN(path)
	if err != nil {
		return nil, &repo.StoreError{Op: "open", Err: err}
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &repo.StoreError{Op: "open", Err: err}
	}
	// одно соединение на весь процесс: движок сам сериализует транзакции
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &repo.StoreError{Op: "open", Err: err}
	}
	return &CredentialRepositorySQLite{db: db, path: path}, nil
}

const dsnPragmas = "_pragma=busy_timeout(5000)"

// buildDSN собирает SQLite URI. Путь экранируется: '#', '?' и '%' в имени
// каталога или файла иначе читаются как часть URI.
func buildDSN(path string) (string, error) {
	if path == MemoryPath {
		return "file::memory:?" + dsnPragmas, nil
	}
	// относительный путь дал бы "file://name" с name в роли authority
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	p := filepath.ToSlash(abs)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // C:/... на windows
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: dsnPragmas}
	return u.String(), nil
}

// Path возвращает путь к файлу БД.
func (r *CredentialRepositorySQLite) Path() string { return r.path }

// Close закрывает соединение с БД. Безопасен для nil и повторного вызова.
func (r *CredentialRepositorySQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Migrate гарантирует наличие таблицы passwords в канонической схеме.
// Старый вариант таблицы без колонки note дополняется через ALTER TABLE.
func (r *CredentialRepositorySQLite) Migrate(ctx context.Context) error {
	if err := r.ensureTable(ctx); err != nil {
		return err
	}
	has, err := r.hasColumn(ctx, "note")
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	if _, err := r.db.ExecContext(ctx, `ALTER TABLE passwords ADD COLUMN note TEXT`); err != nil {
		return &repo.StoreError{Op: "migrate", Err: err}
	}
	return nil
}

func (r *CredentialRepositorySQLite) ensureTable(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, initialDDL()); err != nil {
		return &repo.StoreError{Op: "create table", Err: err}
	}
	return nil
}

// hasColumn проверяет наличие колонки в таблице passwords через PRAGMA table_info.
func (r *CredentialRepositorySQLite) hasColumn(ctx context.Context, column string) (bool, error) {
	rows, err := r.db.QueryContext(ctx, `PRAGMA table_info(passwords)`)
	if err != nil {
		return false, &repo.StoreError{Op: "table info", Err: err}
	}
	defer rows.Close()
	found := false
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return false, &repo.StoreError{Op: "table info", Err: err}
		}
		if name == column {
			found = true
		}
	}
	if err := rows.Err(); err != nil {
		return false, &repo.StoreError{Op: "table info", Err: err}
	}
	return found, nil
}

// FetchAll возвращает все записи, отсортированные по id.
func (r *CredentialRepositorySQLite) FetchAll(ctx context.Context) ([]model.Record, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, IFNULL(url, ''), IFNULL(username, ''),
     IFNULL(password, ''), IFNULL(note, '')
   FROM passwords ORDER BY id`)
	if err != nil {
		return nil, &repo.StoreError{Op: "fetch all", Err: err}
	}
	defer rows.Close()
	res := make([]model.Record, 0)
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Username, &rec.Password, &rec.Note); err != nil {
			return nil, &repo.StoreError{Op: "fetch all", Err: err}
		}
		rec.ShowPass = false
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &repo.StoreError{Op: "fetch all", Err: err}
	}
	return res, nil
}

// Insert добавляет запись; id назначает SQLite (AUTOINCREMENT).
func (r *CredentialRepositorySQLite) Insert(ctx context.Context, rec model.NewRecord) (int64, error) {
	if err := r.ensureTable(ctx); err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO passwords (url, username, password, note) VALUES (?, ?, ?, ?)`,
		rec.URL, rec.Username, rec.Password, rec.Note,
	)
	if err != nil {
		return 0, &repo.StoreError{Op: "insert", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &repo.StoreError{Op: "insert", Err: err}
	}
	return id, nil
}

// Update перезаписывает поля записи rec.ID.
func (r *CredentialRepositorySQLite) Update(ctx context.Context, rec model.StoredRecord) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE passwords SET url = ?, username = ?, password = ?, note = ? WHERE id = ?`,
		rec.URL, rec.Username, rec.Password, rec.Note, rec.ID,
	)
	if err != nil {
		return false, &repo.StoreError{Op: "update", Err: err}
	}
	return affected(res, "update")
}

// Delete удаляет запись по id.
func (r *CredentialRepositorySQLite) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM passwords WHERE id = ?`, id)
	if err != nil {
		return false, &repo.StoreError{Op: "delete", Err: err}
	}
	return affected(res, "delete")
}

// Get возвращает запись по id.
func (r *CredentialRepositorySQLite) Get(ctx context.Context, id int64) (*model.StoredRecord, error) {
	var rec model.StoredRecord
	err := r.db.QueryRowContext(ctx, `SELECT id, IFNULL(url, ''), IFNULL(username, ''),
     IFNULL(password, ''), IFNULL(note, '')
   FROM passwords WHERE id = ?`, id).
		Scan(&rec.ID, &rec.URL, &rec.Username, &rec.Password, &rec.Note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("id %d: %w", id, repo.ErrNotFound)
		}
		return nil, &repo.StoreError{Op: "get", Err: err}
	}
	return &rec, nil
}

// DropTable удаляет таблицу passwords.
func (r *CredentialRepositorySQLite) DropTable(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DROP TABLE IF EXISTS passwords`); err != nil {
		return &repo.StoreError{Op: "drop table", Err: err}
	}
	return nil
}

func affected(res sql.Result, op string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, &repo.StoreError{Op: op, Err: err}
	}
	return n > 0, nil
}
