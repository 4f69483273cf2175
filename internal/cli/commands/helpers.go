package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"PassKeeper/internal/cli/bootstrap"
	"PassKeeper/internal/config"
	"PassKeeper/internal/generator"
	"PassKeeper/internal/service"

	"golang.org/x/term"
)

// подменяются в тестах
var (
	isTerminal   = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	readPassword = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }
)

// openService открывает базу из cfg.DBPath и возвращает сервис вместе с cleanup.
func openService(ctx context.Context, cfg *config.Config) (service.CredentialService, func() error, error) {
	return bootstrap.OpenCredentialService(ctx, cfg, logger)
}

// newFlagSet создаёт набор флагов команды; ошибки разбора превращаются в ErrUsage.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseID разбирает единственный позиционный аргумент <id>.
func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, ErrUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

// passwordFlags - флаги генерации, общие для gen/add/edit.
type passwordFlags struct {
	length   int
	noUpper  bool
	noLower  bool
	noDigits bool
	symbols  bool
	generate bool
}

func (p *passwordFlags) register(fs *flag.FlagSet, cfg *config.Config, withGenerate bool) {
	fs.IntVar(&p.length, "length", cfg.GenLength, "generated password length")
	fs.BoolVar(&p.noUpper, "no-upper", false, "exclude uppercase letters")
	fs.BoolVar(&p.noLower, "no-lower", false, "exclude lowercase letters")
	fs.BoolVar(&p.noDigits, "no-digits", false, "exclude digits")
	fs.BoolVar(&p.symbols, "symbols", false, "include symbols")
	if withGenerate {
		fs.BoolVar(&p.generate, "generate", false, "generate the password")
	}
}

func (p *passwordFlags) flags() generator.Flags {
	return generator.Flags{
		Upper:   !p.noUpper,
		Lower:   !p.noLower,
		Digits:  !p.noDigits,
		Symbols: p.symbols,
	}
}

// promptPassword читает пароль без эха с терминала или строку из In.
func promptPassword(label string) (string, error) {
	fmt.Fprintf(Out, "%s: ", label)
	if isTerminal() {
		b, err := readPassword()
		fmt.Fprintln(Out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	line, err := readLine()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return line, nil
}

// confirm задаёт вопрос да/нет; по умолчанию - нет.
func confirm(question string) bool {
	fmt.Fprintf(Out, "%s [y/N]: ", question)
	line, err := readLine()
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func readLine() (string, error) {
	line, err := bufio.NewReader(In).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
