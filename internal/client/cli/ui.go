package cli

import (
	"context"
	"fmt"

	"github.com/kolab-hr/kolabctl/internal/client/confirm"
	"github.com/kolab-hr/kolabctl/internal/client/ui"
	"github.com/kolab-hr/kolabctl/internal/notify"
)

func (c *Cli) runUI(ctx context.Context) error {
	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !isAuth {
		return fmt.Errorf("not authenticated. Please run 'kolabctl login' first")
	}

	// Дашборд рисует уведомления сам, слушатель-принтер тут не нужен
	center := notify.NewCenter(nil)
	flow := confirm.NewFlow(c.apiClient, center)

	program := ui.NewProgram(ctx, ui.Deps{
		API:    c.apiClient,
		Flow:   flow,
		Center: center,
		Locale: c.locale,
	})
	return program.Start()
}
