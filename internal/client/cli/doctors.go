package cli

import (
	"context"
)

func (c *Cli) runDoctors(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return c.showDoctor(ctx, args[0])
	}

	doctors, stale, err := c.dataService.Doctors(ctx)
	if err != nil {
		return err
	}

	if stale {
		c.io.Println("(offline: showing last known data)")
		c.io.Println()
	}

	if len(doctors) == 0 {
		c.io.Println("No doctors assigned.")

		return nil
	}

	c.io.Printf("Doctors (%d):\n", len(doctors))

	for _, doctor := range doctors {
		c.io.Printf("  %-12s %s", doctor.ID, doctor.Name)

		if doctor.Specialty != "" {
			c.io.Printf(" (%s)", doctor.Specialty)
		}

		c.io.Println()
	}

	return nil
}

func (c *Cli) showDoctor(ctx context.Context, id string) error {
	doctor, stale, err := c.dataService.Doctor(ctx, id)
	if err != nil {
		return err
	}

	if stale {
		c.io.Println("(offline: showing last known data)")
		c.io.Println()
	}

	c.io.Printf("ID:        %s\n", doctor.ID)
	c.io.Printf("Name:      %s\n", doctor.Name)

	if doctor.Specialty != "" {
		c.io.Printf("Specialty: %s\n", doctor.Specialty)
	}

	if doctor.Institution != "" {
		c.io.Printf("Clinic:    %s\n", doctor.Institution)
	}

	if doctor.Address != "" {
		c.io.Printf("Address:   %s\n", doctor.Address)
	}

	return nil
}
