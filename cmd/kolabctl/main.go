package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/kolab-hr/kolabctl/internal/client/api"
	"github.com/kolab-hr/kolabctl/internal/client/auth"
	"github.com/kolab-hr/kolabctl/internal/client/cli"
	"github.com/kolab-hr/kolabctl/internal/client/confirm"
	"github.com/kolab-hr/kolabctl/internal/client/iocli"
	"github.com/kolab-hr/kolabctl/internal/client/storage/boltdb"
	"github.com/kolab-hr/kolabctl/internal/config"
	"github.com/kolab-hr/kolabctl/internal/notify"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Глобальные флаги; значения по умолчанию берутся из конфига
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.Server.URL, "Server URL")
	dbPath := flag.String("db", cfg.Storage.Path, "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	authService := auth.NewService(boltStorage)
	apiClient := api.NewClient(*serverURL, authService, cfg.Server.Timeout)

	stdio := iocli.NewStdio()
	center := notify.NewCenter(func(n notify.Notification) {
		prefix := "✓"
		if n.Kind == notify.Error {
			prefix = "✗"
		}
		stdio.Printf("%s %s\n", prefix, n.Info)
	})
	flow := confirm.NewFlow(apiClient, center)

	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		locale = language.English
	}

	c := cli.New(apiClient, authService, boltStorage, flow, center, stdio, locale)
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("Kolab Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
