package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	// VISITADOR_PASSWORD позволяет логиниться в скриптах без терминала.
	password := os.Getenv("VISITADOR_PASSWORD")
	if password == "" {
		password, err = c.io.ReadPassword("Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	profile, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Name: %s\n", profile.Name)

	if profile.Territory != "" {
		c.io.Printf("Territory: %s\n", profile.Territory)
	}

	return nil
}
