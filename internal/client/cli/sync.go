package cli

import (
	"context"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("Delivering queued operations...")

	result, err := c.syncService.Reconcile(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Done: %d delivered, %d failed", result.Succeeded, result.Failed)

	if result.Skipped > 0 {
		c.io.Printf(", %d quarantined", result.Skipped)
	}

	c.io.Println()

	return nil
}
