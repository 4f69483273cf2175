package commands

import (
	"context"
	"fmt"

	"PassKeeper/internal/config"
	"PassKeeper/internal/model"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Добавить пароль" }
func (addCmd) Usage() string {
	return "add --url U --username N [--password P] [--note T] [--generate] [--length N] [--symbols]"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("add")
	var f model.Fields
	fs.StringVar(&f.URL, "url", "", "site url")
	fs.StringVar(&f.Username, "username", "", "login on the site")
	fs.StringVar(&f.Password, "password", "", "password (prompted when omitted)")
	fs.StringVar(&f.Note, "note", "", "free-form note")
	var pf passwordFlags
	pf.register(fs, cfg, true)
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if f.URL == "" || f.Username == "" {
		return ErrUsage
	}
	if pf.generate && f.Password != "" {
		return ErrUsage
	}

	svc, done, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer done()

	switch {
	case pf.generate:
		if f.Password, err = svc.Generate(pf.length, pf.flags()); err != nil {
			return err
		}
	case f.Password == "":
		if f.Password, err = promptPassword("Password"); err != nil {
			return err
		}
	}

	id, err := svc.Add(ctx, model.NewRecord{Fields: f})
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:       %d\n", id)
	fmt.Fprintf(Out, "  url:      %s\n", f.URL)
	fmt.Fprintf(Out, "  username: %s\n", f.Username)
	if pf.generate {
		fmt.Fprintf(Out, "  password: %s\n", f.Password)
	} else {
		fmt.Fprintln(Out, "  password: <set>")
	}
	if f.Note != "" {
		fmt.Fprintf(Out, "  note:     %s\n", f.Note)
	}
	return nil
}

func init() { RegisterCmd(addCmd{}) }
