package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/farmatrack/visitador/internal/models"
)

func (c *Cli) runPlans(ctx context.Context) error {
	plans, stale, err := c.dataService.Plans(ctx)
	if err != nil {
		return err
	}

	if stale {
		c.io.Println("(offline: showing last known data)")
		c.io.Println()
	}

	if len(plans) == 0 {
		c.io.Println("No visit plans.")

		return nil
	}

	for _, plan := range plans {
		c.io.Printf("Plan %s, week of %s [%s]\n",
			plan.ID, plan.WeekStart.Format("2006-01-02"), plan.Status)

		for _, visit := range plan.Visits {
			c.io.Printf("  %s  doctor %-12s %s  (%s)\n",
				visit.ScheduledAt.Format("Mon 15:04"),
				visit.DoctorID, visit.ID, visit.Status)
		}
	}

	return nil
}

func (c *Cli) runPlanUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: plan <id>")
	}

	planID := args[0]

	c.io.Println("=== Update plan ===")
	c.io.Println("Leave a field empty to keep it unchanged.")
	c.io.Println()

	status, err := c.io.ReadInput("New status (active/closed): ")
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}

	removeVisit, err := c.io.ReadInput("Remove visit id: ")
	if err != nil {
		return fmt.Errorf("failed to read visit id: %w", err)
	}

	change := models.PlanChange{
		Status:      status,
		RemoveVisit: removeVisit,
	}

	result, err := c.dataService.UpdatePlan(ctx, planID, change)
	if err != nil {
		return err
	}

	if result.Queued {
		c.io.Printf("✓ Server unreachable, change queued as %s\n", result.OperationID)
	} else {
		c.io.Println("✓ Plan updated.")
	}

	return nil
}
