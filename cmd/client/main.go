package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"PassKeeper/internal/cli/commands"
	"PassKeeper/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// os.Exit не выполняет defer, поэтому вся работа в run
	if code := run(); code != 0 {
		os.Exit(code)
	}
}

func run() int {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return 0
	}

	// логи сервиса нужны только с --verbose
	if cfg.Verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		defer func() { _ = logger.Sync() }()
		commands.SetLogger(logger.Sugar())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// dispatcher
	return commands.Dispatch(ctx, cfg, flag.Args())
}

func printVersion() {
	fmt.Printf("PassKeeper CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
