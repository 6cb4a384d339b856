package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/kolab-hr/kolabctl/internal/client/auth"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем access token, выданный провайдером аутентификации
	credential, err := c.io.ReadPassword("Access token: ")
	if err != nil {
		return fmt.Errorf("failed to read access token: %w", err)
	}
	if credential == "" {
		return fmt.Errorf("access token cannot be empty")
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	user, err := c.apiClient.Login(ctx, credential)
	if err != nil {
		return err
	}

	if err := c.authService.SaveSession(ctx, credential, user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("User: %s (%s)\n", user.FullName(), user.Email)
	c.io.Printf("Authorization: %s\n", user.Authorization)

	if expiry, err := auth.TokenExpiry(credential); err == nil && !expiry.IsZero() {
		c.io.Printf("Token expires: %s\n", expiry.Format(time.RFC3339))
	}

	return nil
}
