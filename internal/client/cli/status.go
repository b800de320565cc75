package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	status, err := c.authService.Status(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Status ===")
	c.io.Println()

	if !status.Authenticated {
		c.io.Println("Not authenticated. Run 'visitador login' first.")
	} else {
		c.io.Println("Authenticated: yes")

		if status.User != nil {
			c.io.Printf("User: %s\n", status.User.Name)

			if status.User.Territory != "" {
				c.io.Printf("Territory: %s\n", status.User.Territory)
			}
		}

		if status.ExpiresAt > 0 {
			c.io.Printf("Token expires: %s\n",
				time.Unix(status.ExpiresAt, 0).Format(time.RFC3339))
		}
	}

	c.io.Println()

	// Свежая проба вместо последнего кэшированного состояния.
	state := c.monitor.Check(ctx)
	if state.Online {
		c.io.Printf("Connectivity: online (%s)\n", state.Kind)
	} else {
		c.io.Println("Connectivity: offline")
	}

	stats, err := c.dataService.PendingSummary(ctx)
	if err != nil {
		return err
	}

	if stats.Total > 0 {
		c.io.Printf("Pending operations: %d (failed: %d, quarantined: %d)\n",
			stats.Total, stats.Failed, stats.Quarantined)
	}

	return nil
}
