// Package config loads the reservations YAML file and holds the run
// defaults. The defaults here are the single source of truth; commands
// reference them and no other code should duplicate the values.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spboyer/dineplan/internal/models"
)

const (
	DefaultMinGroupSize = 4
	DefaultMaxGroupSize = 8

	// DefaultMaxSolverNodes bounds the branch-and-bound search per run.
	DefaultMaxSolverNodes = 20000

	DefaultTemplatePath = "reservations_template.yaml"
)

// ReservationsFile is the on-disk shape of the reservations YAML.
type ReservationsFile struct {
	Reservations []models.Reservation `yaml:"reservations"`
}

// LoadReservations reads and validates the reservations file. Day names are
// lowercased; a missing status defaults to pending.
func LoadReservations(path string) ([]models.Reservation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reservations: read %s: %w", path, err)
	}

	var file ReservationsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("reservations: parse %s: %w", path, err)
	}

	for i := range file.Reservations {
		res := &file.Reservations[i]
		if res.Restaurant == "" {
			return nil, fmt.Errorf("reservations: entry %d has no restaurant", i+1)
		}
		if res.Day == "" {
			return nil, fmt.Errorf("reservations: entry %d (%s) has no day", i+1, res.Restaurant)
		}
		res.Day = strings.ToLower(res.Day)
		if res.Status == "" {
			res.Status = models.StatusPending
		}
		if !res.Status.Valid() {
			return nil, fmt.Errorf("reservations: entry %d (%s/%s) has unknown status %q",
				i+1, res.Restaurant, res.Day, res.Status)
		}
		if res.Status == models.StatusConfirmed && res.Capacity <= 0 {
			return nil, fmt.Errorf("reservations: entry %d (%s/%s) is confirmed with no capacity",
				i+1, res.Restaurant, res.Day)
		}
	}

	return file.Reservations, nil
}

// NormalizeDays lowercases and de-duplicates day names, preserving order.
func NormalizeDays(days []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range days {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
