package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Portfolio/internal/cli/commands"
	"Portfolio/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// env + .env + флаги, общие с сервером
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion(cfg)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	cancel()
	os.Exit(code)
}

func printVersion(cfg *config.Config) {
	fmt.Printf("pfctl (Portfolio CLI)\nVersion: %s\nBuild date: %s\nServer: %s\nIdentity file: %s\n",
		version, buildDate, cfg.ServerURL, cfg.IdentityFile)
}
