package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"PassKeeper/internal/generator"
	"PassKeeper/internal/model"
	"PassKeeper/internal/repo"

	"go.uber.org/zap"
)

var (
	// ErrNotFound - запись с таким id отсутствует (update/delete/get).
	ErrNotFound = repo.ErrNotFound
	// ErrValidation - некорректный ввод пользователя.
	ErrValidation = errors.New("validation failed")
)

// CredentialService описывает юзкейс-уровень работы с паролями для CLI и HTTP.
type CredentialService interface {
	// List возвращает все записи (пароли скрыты).
	List(ctx context.Context) ([]model.Record, error)
	// Search возвращает записи, у которых url, username или note содержат query.
	Search(ctx context.Context, query string) ([]model.Record, error)
	// Reveal возвращает одну запись с ShowPass = true.
	Reveal(ctx context.Context, id int64) (model.Record, error)
	// Add проверяет обязательные поля и сохраняет новую запись. Возвращает id.
	Add(ctx context.Context, rec model.NewRecord) (int64, error)
	// Edit перезаписывает существующую запись.
	Edit(ctx context.Context, rec model.StoredRecord) error
	// Remove удаляет запись по id.
	Remove(ctx context.Context, id int64) error
	// Share возвращает текст записи для отправки.
	Share(ctx context.Context, id int64) (string, error)
	// Reset удаляет все записи вместе с таблицей и создаёт её заново.
	Reset(ctx context.Context) error
	// Generate создаёт пароль длиной от generator.MinLength до generator.MaxLength.
	Generate(length int, flags generator.Flags) (string, error)
}

// CredentialServiceLocal - реализация CredentialService поверх локального хранилища.
type CredentialServiceLocal struct {
	repo   repo.CredentialRepository
	gen    *generator.Generator
	logger *zap.SugaredLogger
}

// NewCredentialService создаёт сервис. gen == nil - генератор на crypto/rand.
func NewCredentialService(r repo.CredentialRepository, gen *generator.Generator, logger *zap.SugaredLogger) CredentialService {
	if gen == nil {
		gen = generator.New(nil)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CredentialServiceLocal{repo: r, gen: gen, logger: logger}
}

// List возвращает все записи.
func (s *CredentialServiceLocal) List(ctx context.Context) ([]model.Record, error) {
	list, err := s.repo.FetchAll(ctx)
	if err != nil {
		s.logger.Errorw("failed to fetch passwords", "error", err)
		return nil, err
	}
	return list, nil
}

// Search фильтрует результат FetchAll на стороне сервиса.
func (s *CredentialServiceLocal) Search(ctx context.Context, query string) ([]model.Record, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]model.Record, 0, len(list))
	for _, rec := range list {
		if rec.Matches(query) {
			res = append(res, rec)
		}
	}
	return res, nil
}

// Reveal читает запись и включает показ пароля.
func (s *CredentialServiceLocal) Reveal(ctx context.Context, id int64) (model.Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.logger.Errorw("failed to get password", "id", id, "error", err)
		}
		return model.Record{}, err
	}
	return model.Record{StoredRecord: *rec, ShowPass: true}, nil
}

// Add сохраняет новую запись.
func (s *CredentialServiceLocal) Add(ctx context.Context, rec model.NewRecord) (int64, error) {
	if err := validate(rec.Fields); err != nil {
		return 0, err
	}
	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		s.logger.Errorw("failed to save password", "url", rec.URL, "error", err)
		return 0, err
	}
	s.logger.Infow("password saved", "id", id, "url", rec.URL)
	return id, nil
}

// Edit обновляет запись; отсутствие строки превращается в ErrNotFound.
func (s *CredentialServiceLocal) Edit(ctx context.Context, rec model.StoredRecord) error {
	if err := validate(rec.Fields); err != nil {
		return err
	}
	found, err := s.repo.Update(ctx, rec)
	if err != nil {
		s.logger.Errorw("failed to update password", "id", rec.ID, "error", err)
		return err
	}
	if !found {
		return fmt.Errorf("id %d: %w", rec.ID, ErrNotFound)
	}
	s.logger.Infow("password updated", "id", rec.ID)
	return nil
}

// Remove удаляет запись; отсутствие строки превращается в ErrNotFound.
func (s *CredentialServiceLocal) Remove(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to delete password", "id", id, "error", err)
		return err
	}
	if !found {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}
	s.logger.Infow("password deleted", "id", id)
	return nil
}

// Share возвращает текст для "поделиться".
func (s *CredentialServiceLocal) Share(ctx context.Context, id int64) (string, error) {
	rec, err := s.Reveal(ctx, id)
	if err != nil {
		return "", err
	}
	return rec.ShareText(), nil
}

// Reset удаляет таблицу и сразу создаёт пустую.
func (s *CredentialServiceLocal) Reset(ctx context.Context) error {
	if err := s.repo.DropTable(ctx); err != nil {
		s.logger.Errorw("failed to drop passwords table", "error", err)
		return err
	}
	if err := s.repo.Migrate(ctx); err != nil {
		s.logger.Errorw("failed to recreate passwords table", "error", err)
		return err
	}
	s.logger.Infow("passwords table reset")
	return nil
}

// Generate проверяет допустимую длину и делегирует генератору.
func (s *CredentialServiceLocal) Generate(length int, flags generator.Flags) (string, error) {
	if length < generator.MinLength || length > generator.MaxLength {
		return "", fmt.Errorf("%w: length must be between %d and %d, got %d",
			ErrValidation, generator.MinLength, generator.MaxLength, length)
	}
	return s.gen.Generate(length, flags)
}

// validate повторяет проверку формы: url, username и password обязательны, note - нет.
func validate(f model.Fields) error {
	var missing []string
	if strings.TrimSpace(f.URL) == "" {
		missing = append(missing, "url")
	}
	if strings.TrimSpace(f.Username) == "" {
		missing = append(missing, "username")
	}
	if f.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: required: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
