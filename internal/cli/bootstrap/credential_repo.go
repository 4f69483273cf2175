package bootstrap

import (
	"context"
	"fmt"

	"PassKeeper/internal/config"
	"PassKeeper/internal/repo"
	"PassKeeper/internal/repo/sqlite"
	"PassKeeper/internal/service"

	"go.uber.org/zap"
)

// OpenCredentialRepo открывает базу паролей по пути path,
// выполняет миграции и возвращает (repo, cleanup, error).
// cleanup необходимо вызвать после окончания работы с репозиторием, чтобы закрыть соединение с БД.
func OpenCredentialRepo(ctx context.Context, path string) (repo.CredentialRepository, func() error, error) {
	r, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open passwords db: %w", err)
	}
	if err := r.Migrate(ctx); err != nil {
		_ = r.Close()
		return nil, nil, fmt.Errorf("migrate passwords db: %w", err)
	}
	cleanup := func() error { return r.Close() }
	return r, cleanup, nil
}

// OpenCredentialService собирает сервис поверх базы из cfg.DBPath.
func OpenCredentialService(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (service.CredentialService, func() error, error) {
	r, cleanup, err := OpenCredentialRepo(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return service.NewCredentialService(r, nil, logger), cleanup, nil
}
