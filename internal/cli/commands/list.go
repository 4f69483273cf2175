package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"PassKeeper/internal/config"
	"PassKeeper/internal/model"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Показать все записи (пароли скрыты)" }
func (listCmd) Usage() string       { return "list [--show] [--search Q]" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("list")
	show := fs.Bool("show", false, "show passwords")
	query := fs.String("search", "", "filter by url, username or note")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	svc, done, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	var list []model.Record
	if *query != "" {
		list, err = svc.Search(ctx, *query)
	} else {
		list, err = svc.List(ctx)
	}
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}

	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tURL\tUSERNAME\tPASSWORD\tNOTE")
	for _, rec := range list {
		rec.ShowPass = *show
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", rec.ID, rec.URL, rec.Username, rec.DisplayPassword(), rec.Note)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(listCmd{}) }
