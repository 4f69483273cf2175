package commands

import (
	"context"
	"flag"
	"fmt"

	"PassKeeper/internal/config"
	"PassKeeper/internal/model"
)

type editCmd struct{}

func (editCmd) Name() string        { return "edit" }
func (editCmd) Description() string { return "Изменить поля записи" }
func (editCmd) Usage() string {
	return "edit [--url U] [--username N] [--password P] [--note T] [--generate] <id>"
}

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("edit")
	var f model.Fields
	fs.StringVar(&f.URL, "url", "", "site url")
	fs.StringVar(&f.Username, "username", "", "login on the site")
	fs.StringVar(&f.Password, "password", "", "new password")
	fs.StringVar(&f.Note, "note", "", "free-form note, empty clears it")
	var pf passwordFlags
	pf.register(fs, cfg, true)
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	id, err := parseID(fs.Args())
	if err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if pf.generate && set["password"] {
		return ErrUsage
	}
	if !set["url"] && !set["username"] && !set["password"] && !set["note"] && !pf.generate {
		return ErrUsage
	}

	svc, done, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	cur, err := svc.Reveal(ctx, id)
	if err != nil {
		return err
	}
	upd := cur.StoredRecord
	if set["url"] {
		upd.URL = f.URL
	}
	if set["username"] {
		upd.Username = f.Username
	}
	if set["password"] {
		upd.Password = f.Password
	}
	if set["note"] {
		upd.Note = f.Note
	}
	if pf.generate {
		if upd.Password, err = svc.Generate(pf.length, pf.flags()); err != nil {
			return err
		}
	}

	if err := svc.Edit(ctx, upd); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Updated: %d\n", id)
	if pf.generate {
		fmt.Fprintf(Out, "  password: %s\n", upd.Password)
	}
	return nil
}

func init() { RegisterCmd(editCmd{}) }
