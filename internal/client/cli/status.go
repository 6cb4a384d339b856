package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kolab-hr/kolabctl/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	session, err := c.authService.Session(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'kolabctl login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("User: %s %s (%s)\n", session.Name, session.Surname, session.Email)
	c.io.Printf("Authorization: %s\n", session.Authorization)

	if session.ExpiresAt.IsZero() {
		c.io.Println("Token expires: never (no expiry claim)")
		return nil
	}

	c.io.Printf("Token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	remaining := time.Until(session.ExpiresAt)
	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Token has expired. Please login again.")
	}

	return nil
}
