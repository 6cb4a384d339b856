// Package cli implements the command runners of kolabctl.
package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/text/language"

	"github.com/kolab-hr/kolabctl/internal/client/api"
	"github.com/kolab-hr/kolabctl/internal/client/auth"
	"github.com/kolab-hr/kolabctl/internal/client/confirm"
	"github.com/kolab-hr/kolabctl/internal/client/iocli"
	"github.com/kolab-hr/kolabctl/internal/client/storage"
	"github.com/kolab-hr/kolabctl/internal/notify"
)

type Cli struct {
	apiClient   *api.Client
	authService *auth.Service
	options     storage.OptionStorage
	flow        *confirm.Flow
	center      *notify.Center
	io          iocli.IO
	locale      language.Tag
}

func New(apiClient *api.Client, authService *auth.Service, options storage.OptionStorage, flow *confirm.Flow, center *notify.Center, io iocli.IO, locale language.Tag) *Cli {
	return &Cli{
		apiClient:   apiClient,
		authService: authService,
		options:     options,
		flow:        flow,
		center:      center,
		io:          io,
		locale:      locale,
	}
}

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error
	switch command {
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "list":
		err = c.runList(ctx, args)
	case "add":
		err = c.runAdd(ctx, args)
	case "edit":
		err = c.runEdit(ctx, args)
	case "delete":
		err = c.runDelete(ctx, args)
	case "ui":
		err = c.runUI(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func PrintUsage() {
	fmt.Println("Kolab Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  kolabctl [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: ~/.kolabctl/kolabctl.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                     Login to the Kolab server")
	fmt.Println("  logout                    Delete the local session")
	fmt.Println("  status                    Show authentication status")
	fmt.Println("  list <entity> [flags]     List records (--search q, --sort col, --desc)")
	fmt.Println("  add <entity> [flags]      Add a record interactively")
	fmt.Println("  edit <entity> <id>        Edit a record interactively")
	fmt.Println("  delete <entity> <id>      Delete a record after confirmation")
	fmt.Println("  ui                        Open the interactive dashboard")
	fmt.Println()
	fmt.Println("Entities:")
	fmt.Println("  category, industry, company, contact, project, user, collaboration")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  kolabctl login")
	fmt.Println("  kolabctl list companies --search acme --sort name")
	fmt.Println("  kolabctl list contacts --company b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  kolabctl add project")
	fmt.Println("  kolabctl edit company b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  kolabctl delete user b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  kolabctl --server https://kolab.example.com ui")
}
