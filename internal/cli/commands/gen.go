package commands

import (
	"context"
	"fmt"

	"PassKeeper/internal/config"
	"PassKeeper/internal/generator"
	"PassKeeper/internal/service"
)

type genCmd struct{}

func (genCmd) Name() string        { return "gen" }
func (genCmd) Description() string { return "Сгенерировать пароль" }
func (genCmd) Usage() string {
	return "gen [--length N] [--no-upper] [--no-lower] [--no-digits] [--symbols] [--count N]"
}

func (genCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("gen")
	var pf passwordFlags
	pf.register(fs, cfg, false)
	count := fs.Int("count", 1, "how many passwords to print")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 || *count < 1 {
		return ErrUsage
	}

	// база не нужна: генерация не трогает хранилище
	svc := service.NewCredentialService(nil, generator.New(nil), logger)
	for i := 0; i < *count; i++ {
		pw, err := svc.Generate(pf.length, pf.flags())
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, pw)
	}
	return nil
}

func init() { RegisterCmd(genCmd{}) }
