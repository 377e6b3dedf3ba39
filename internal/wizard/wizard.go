// Package wizard collects reservation entries interactively.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spboyer/dineplan/internal/models"
)

// RunReservationWizard runs a huh form repeatedly until the user stops
// adding entries. Restaurants and days populate the select options.
func RunReservationWizard(in io.Reader, out io.Writer, restaurants, days []string) ([]models.Reservation, error) {
	if len(restaurants) == 0 {
		return nil, fmt.Errorf("wizard: no restaurants to choose from")
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("wizard: no days to choose from")
	}

	var reservations []models.Reservation
	for {
		res, more, err := collectOne(in, out, restaurants, days)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
		if !more {
			return reservations, nil
		}
	}
}

func collectOne(in io.Reader, out io.Writer, restaurants, days []string) (*models.Reservation, bool, error) {
	var (
		restaurant  string
		day         string
		capacityRaw string
		status      string
		more        bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Restaurant").
				Options(huh.NewOptions(restaurants...)...).
				Value(&restaurant),
			huh.NewSelect[string]().
				Title("Day").
				Options(huh.NewOptions(days...)...).
				Value(&day),
			huh.NewInput().
				Title("Capacity").
				Description("Party size the restaurant will seat").
				Placeholder("8").
				Value(&capacityRaw).
				Validate(ValidateCapacity),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("confirmed", string(models.StatusConfirmed)),
					huh.NewOption("pending", string(models.StatusPending)),
					huh.NewOption("unavailable", string(models.StatusUnavailable)),
				).
				Value(&status),
			huh.NewConfirm().
				Title("Add another reservation?").
				Value(&more),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g. tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, false, fmt.Errorf("wizard failed: %w", err)
	}

	capacity, _ := strconv.Atoi(strings.TrimSpace(capacityRaw))
	return &models.Reservation{
		Restaurant: restaurant,
		Day:        day,
		Capacity:   capacity,
		Status:     models.ReservationStatus(status),
	}, more, nil
}

// ValidateCapacity checks that the capacity field is a positive integer.
func ValidateCapacity(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("capacity must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	return nil
}
