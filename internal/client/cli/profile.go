package cli

import (
	"context"
)

func (c *Cli) runProfile(ctx context.Context) error {
	profile, stale, err := c.dataService.Profile(ctx)
	if err != nil {
		return err
	}

	if stale {
		c.io.Println("(offline: showing last known data)")
		c.io.Println()
	}

	c.io.Printf("Name:      %s\n", profile.Name)

	if profile.Email != "" {
		c.io.Printf("Email:     %s\n", profile.Email)
	}

	if profile.Territory != "" {
		c.io.Printf("Territory: %s\n", profile.Territory)
	}

	return nil
}
