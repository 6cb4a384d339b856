// Package ui implements the interactive dashboard: entity listings with live
// search and column sort, modal entity forms and the shared delete dialog,
// all over the same core packages the plain commands use.
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/kolab-hr/kolabctl/internal/client/api"
	"github.com/kolab-hr/kolabctl/internal/client/confirm"
	"github.com/kolab-hr/kolabctl/internal/notify"
)

// Deps are the shared services the dashboard runs on.
type Deps struct {
	API    *api.Client
	Flow   *confirm.Flow
	Center *notify.Center
	Locale language.Tag
}

// Program wraps the Bubble Tea program lifecycle.
type Program struct {
	program *tea.Program
}

// NewProgram constructs a new interactive session.
func NewProgram(ctx context.Context, deps Deps) *Program {
	m := newModel(ctx, deps)
	return &Program{program: tea.NewProgram(m, tea.WithAltScreen())}
}

// Start launches the Bubble Tea program and blocks until it exits.
func (p *Program) Start() error {
	if p == nil || p.program == nil {
		return fmt.Errorf("nil program")
	}
	_, err := p.program.Run()
	return err
}
