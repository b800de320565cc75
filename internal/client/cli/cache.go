package cli

import (
	"context"
	"errors"
)

func (c *Cli) runCache(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: cache <stats|clear|expire>")
	}

	switch args[0] {
	case "stats":
		stats, err := c.cacheService.Stats(ctx)
		if err != nil {
			return err
		}

		c.io.Printf("Entries: %d (expired: %d)\n", stats.Entries, stats.Expired)
		c.io.Printf("Size: %d bytes\n", stats.TotalSize)

		return nil
	case "clear":
		if err := c.cacheService.Clear(ctx); err != nil {
			return err
		}

		c.io.Println("✓ Cache cleared.")

		return nil
	case "expire":
		removed, err := c.cacheService.ClearExpired(ctx)
		if err != nil {
			return err
		}

		c.io.Printf("✓ Removed %d expired entries.\n", removed)

		return nil
	default:
		return errors.New("usage: cache <stats|clear|expire>")
	}
}
