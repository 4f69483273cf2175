package commands

import (
	"context"
	"fmt"

	"PassKeeper/internal/config"
)

type resetCmd struct{}

func (resetCmd) Name() string        { return "reset" }
func (resetCmd) Description() string { return "Удалить все записи" }
func (resetCmd) Usage() string       { return "reset [--yes]" }

func (resetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("reset")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if !*yes && !confirm("Delete ALL passwords? This cannot be undone.") {
		fmt.Fprintln(Out, "Отменено")
		return nil
	}

	svc, done, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(Out, "All passwords deleted")
	return nil
}

func init() { RegisterCmd(resetCmd{}) }
