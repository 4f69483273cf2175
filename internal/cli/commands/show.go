package commands

import (
	"context"
	"fmt"

	"PassKeeper/internal/config"
)

type showCmd struct{}

func (showCmd) Name() string        { return "show" }
func (showCmd) Description() string { return "Показать запись вместе с паролем" }
func (showCmd) Usage() string       { return "show <id>" }

func (showCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}
	svc, done, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	rec, err := svc.Reveal(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "id:       %d\n", rec.ID)
	fmt.Fprintf(Out, "url:      %s\n", rec.URL)
	fmt.Fprintf(Out, "username: %s\n", rec.Username)
	fmt.Fprintf(Out, "password: %s\n", rec.DisplayPassword())
	fmt.Fprintf(Out, "note:     %s\n", rec.Note)
	return nil
}

func init() { RegisterCmd(showCmd{}) }
