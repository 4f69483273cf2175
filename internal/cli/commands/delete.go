package commands

import (
	"context"
	"fmt"

	"PassKeeper/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Удалить запись" }
func (deleteCmd) Usage() string       { return "delete [--yes] <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("delete")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}
	if !*yes && !confirm(fmt.Sprintf("Delete password %d? Are you sure you want to delete this password?", id)) {
		fmt.Fprintln(Out, "Отменено")
		return nil
	}

	svc, done, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: %d\n", id)
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
