package commands

import (
	"context"
	"errors"
	"fmt"

	"PassKeeper/internal/cli/auth"
	"PassKeeper/internal/config"
	"PassKeeper/internal/middleware"
)

type apiTokenCmd struct{}

func (apiTokenCmd) Name() string        { return "api-token" }
func (apiTokenCmd) Description() string { return "Выдать токен для HTTP API (pkserver)" }
func (apiTokenCmd) Usage() string       { return "api-token [--ttl D] [--renew]" }

// Run печатает сохранённый токен, если он ещё действителен, иначе выпускает новый.
func (apiTokenCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("api-token")
	ttl := fs.Duration("ttl", middleware.DefaultTokenTTL, "token lifetime, e.g. 24h")
	renew := fs.Bool("renew", false, "issue a new token even if the saved one is valid")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 || *ttl <= 0 {
		return ErrUsage
	}

	if !*renew {
		tok, err := auth.LoadToken(cfg.TokenFile)
		switch {
		case err == nil:
			if _, perr := middleware.ParseToken(cfg.AuthSecret, tok); perr == nil {
				fmt.Fprintln(Out, tok)
				return nil
			}
			logger.Infow("saved token is not valid, issuing a new one", "file", cfg.TokenFile)
		case !errors.Is(err, auth.ErrNoToken):
			return fmt.Errorf("read token: %w", err)
		}
	}

	tok, err := middleware.IssueToken(cfg.AuthSecret, *ttl)
	if err != nil {
		return err
	}
	if err := auth.SaveToken(cfg.TokenFile, tok); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	fmt.Fprintln(Out, tok)
	return nil
}

func init() { RegisterCmd(apiTokenCmd{}) }
