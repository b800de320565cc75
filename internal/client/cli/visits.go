package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/farmatrack/visitador/internal/models"
)

func (c *Cli) runVisit(ctx context.Context) error {
	c.io.Println("=== Record visit ===")
	c.io.Println()

	doctorID, err := c.io.ReadInput("Doctor id: ")
	if err != nil {
		return fmt.Errorf("failed to read doctor id: %w", err)
	}

	planID, err := c.io.ReadInput("Plan id (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read plan id: %w", err)
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	visit := &models.VisitRecord{
		DoctorID:    doctorID,
		PlanID:      planID,
		Notes:       notes,
		PerformedAt: time.Now(),
	}

	result, err := c.dataService.RecordVisit(ctx, visit)
	if err != nil {
		return err
	}

	if result.Queued {
		c.io.Printf("✓ Server unreachable, visit queued as %s\n", result.OperationID)
	} else {
		c.io.Println("✓ Visit recorded.")
	}

	return nil
}

func (c *Cli) runVisitHistory(ctx context.Context) error {
	visits, stale, err := c.dataService.VisitHistory(ctx)
	if err != nil {
		return err
	}

	if stale {
		c.io.Println("(offline: showing last known data)")
		c.io.Println()
	}

	if len(visits) == 0 {
		c.io.Println("No visits recorded.")

		return nil
	}

	c.io.Printf("Visits (%d):\n", len(visits))

	for _, visit := range visits {
		c.io.Printf("  %s  doctor %-12s",
			visit.PerformedAt.Format("2006-01-02 15:04"), visit.DoctorID)

		if visit.Notes != "" {
			c.io.Printf("  %s", visit.Notes)
		}

		c.io.Println()
	}

	return nil
}
