package commands

import (
	"context"
	"fmt"

	"PassKeeper/internal/config"
)

type shareCmd struct{}

func (shareCmd) Name() string        { return "share" }
func (shareCmd) Description() string { return "Вывести запись текстом для отправки" }
func (shareCmd) Usage() string       { return "share <id>" }

func (shareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	svc, done, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	text, err := svc.Share(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, text)
	return nil
}

func init() { RegisterCmd(shareCmd{}) }
