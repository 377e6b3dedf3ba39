// Package template renders the reservations file scaffold that users edit
// to record their confirmed bookings.
package template

import (
	"fmt"
	"os"
	"strings"
	"text/template"
)

const reservationsTemplate = `# Reservations file for dineplan
# Add your confirmed reservations here.
#
# Available restaurants: {{ join .Restaurants ", " }}
# Days: {{ join .Days ", " }}
#
# Status options:
#   - confirmed: reservation is booked
#   - unavailable: tried to book but the restaurant couldn't accommodate
#   - pending: reservation request is in flight
#
reservations:
  - restaurant: "{{ .ExampleRestaurant }}"
    day: {{ .ExampleDay }}
    capacity: 8
    status: confirmed
`

type templateData struct {
	Restaurants       []string
	Days              []string
	ExampleRestaurant string
	ExampleDay        string
}

// Reservations renders the commented YAML scaffold for the given restaurants
// and days.
func Reservations(restaurants, days []string) (string, error) {
	data := templateData{
		Restaurants:       restaurants,
		Days:              days,
		ExampleRestaurant: "Restaurant Name",
		ExampleDay:        "tuesday",
	}
	if len(restaurants) > 0 {
		data.ExampleRestaurant = restaurants[0]
	}
	if len(days) > 0 {
		data.ExampleDay = days[0]
	}

	t, err := template.New("reservations").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(reservationsTemplate)
	if err != nil {
		return "", fmt.Errorf("template: parse: %w", err)
	}

	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template: render: %w", err)
	}
	return buf.String(), nil
}

// WriteReservations renders the scaffold to the given path.
func WriteReservations(path string, restaurants, days []string) error {
	content, err := Reservations(restaurants, days)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("template: write %s: %w", path, err)
	}
	return nil
}
