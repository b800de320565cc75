package cli

import (
	"context"
	"errors"

	"github.com/farmatrack/visitador/internal/models"
)

func (c *Cli) runPending(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if args[0] != "drop" {
			return errors.New("usage: pending [drop <id>]")
		}

		if len(args) < 2 {
			return errors.New("usage: pending drop <id>")
		}

		return c.dropPending(ctx, args[1])
	}

	ops, err := c.queueService.PeekAll(ctx)
	if err != nil {
		return err
	}

	if len(ops) == 0 {
		c.io.Println("No pending operations.")

		return nil
	}

	c.io.Printf("Pending operations (%d):\n", len(ops))

	for _, op := range ops {
		c.io.Printf("  %s  %-12s %-11s retries: %d",
			op.CreatedAt.Format("2006-01-02 15:04"), op.Kind, op.Status, op.RetryCount)

		if op.LastError != "" {
			c.io.Printf("  last error: %s", op.LastError)
		}

		c.io.Println()
		c.io.Printf("    id: %s\n", op.ID)

		if op.Status == models.StatusQuarantined {
			c.io.Println("    excluded from automatic retry; use 'pending drop' to discard")
		}
	}

	return nil
}

func (c *Cli) dropPending(ctx context.Context, id string) error {
	// Удаление безвозвратно: данные операции будут потеряны.
	confirm, err := c.io.ReadInput("Discard operation " + id + "? (yes/no): ")
	if err != nil {
		return err
	}

	if confirm != "yes" {
		c.io.Println("Cancelled.")

		return nil
	}

	if err := c.queueService.Drop(ctx, id); err != nil {
		return err
	}

	c.io.Println("✓ Operation discarded.")

	return nil
}
