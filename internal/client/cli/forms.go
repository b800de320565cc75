package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/farmatrack/visitador/internal/models"
)

func (c *Cli) runForm(ctx context.Context) error {
	c.io.Println("=== Satisfaction form ===")
	c.io.Println()

	visitID, err := c.io.ReadInput("Visit id: ")
	if err != nil {
		return fmt.Errorf("failed to read visit id: %w", err)
	}

	ratingStr, err := c.io.ReadInput("Rating (1-5): ")
	if err != nil {
		return fmt.Errorf("failed to read rating: %w", err)
	}

	rating, err := strconv.Atoi(ratingStr)
	if err != nil {
		return fmt.Errorf("rating must be a number: %w", err)
	}

	comments, err := c.io.ReadInput("Comments (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read comments: %w", err)
	}

	signature, err := c.io.ReadInput("Signature (base64): ")
	if err != nil {
		return fmt.Errorf("failed to read signature: %w", err)
	}

	form := &models.SatisfactionForm{
		VisitID:   visitID,
		Rating:    rating,
		Comments:  comments,
		Signature: signature,
	}

	result, err := c.dataService.SubmitForm(ctx, form)
	if err != nil {
		return err
	}

	if result.Queued {
		c.io.Printf("✓ Server unreachable, form queued as %s\n", result.OperationID)
	} else {
		c.io.Println("✓ Form submitted.")
	}

	return nil
}
