package repo

import (
	"context"
	"errors"
	"fmt"

	"PassKeeper/internal/model"
)

// ErrNotFound - запись с указанным id отсутствует.
var ErrNotFound = errors.New("credential not found")

// StoreError оборачивает любую ошибку движка БД (открытие, выполнение SQL).
// Категории ошибок не различаются: вызывающему достаточно errors.As.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// CredentialRepository определяет порт доступа к локальному хранилищу паролей.
type CredentialRepository interface {
	// Migrate создаёт (или дополняет до канонической) схему таблицы passwords.
	Migrate(ctx context.Context) error

	// FetchAll возвращает все записи таблицы, у каждой ShowPass = false.
	FetchAll(ctx context.Context) ([]model.Record, error)

	// Insert создаёт таблицу при необходимости и добавляет запись. Возвращает назначенный id.
	Insert(ctx context.Context, rec model.NewRecord) (int64, error)

	// Update перезаписывает url, username, password и note записи rec.ID.
	// found = false, если строка с таким id не найдена; это не ошибка.
	Update(ctx context.Context, rec model.StoredRecord) (found bool, err error)

	// Delete удаляет запись по id. found = false, если удалять было нечего.
	Delete(ctx context.Context, id int64) (found bool, err error)

	// Get возвращает одну запись или ErrNotFound.
	Get(ctx context.Context, id int64) (*model.StoredRecord, error)

	// DropTable удаляет таблицу целиком; следующий Migrate/Insert создаст её заново.
	DropTable(ctx context.Context) error
}
