package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	prefsPath, resPath := writeFixtures(t)

	out, err := runCommand(t, newCheckCommand(),
		prefsPath,
		"--days", "tuesday",
		"--reservations", resPath,
		"--min-group-size", "1",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Inputs look good.")
}

func TestCheckCommand_NoConfirmedReservations(t *testing.T) {
	prefsPath, _ := writeFixtures(t)

	out, err := runCommand(t, newCheckCommand(),
		prefsPath,
		"--days", "tuesday",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem")
	assert.Contains(t, out, "no confirmed reservations for tuesday")
}

func TestCheckCommand_ReportsShortfall(t *testing.T) {
	prefsPath, _ := writeFixtures(t)
	dir := t.TempDir()
	resPath := filepath.Join(dir, "reservations.yaml")
	require.NoError(t, os.WriteFile(resPath, []byte(`reservations:
  - restaurant: "Chez Panisse"
    day: tuesday
    capacity: 2
    status: confirmed
`), 0o644))

	out, err := runCommand(t, newCheckCommand(),
		prefsPath,
		"--days", "tuesday",
		"--reservations", resPath,
		"--min-group-size", "1",
	)
	require.NoError(t, err, "a shortfall is a warning, not a failure")
	assert.Contains(t, out, "shortfall 1")
}

func TestCheckCommand_ExcludedEverywhereDiner(t *testing.T) {
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "preferences.csv")
	require.NoError(t, os.WriteFile(prefsPath, []byte(`Email Address,Nopa
strict@corp.test,Can't eat here
`), 0o644))

	out, err := runCommand(t, newCheckCommand(),
		prefsPath,
		"--days", "tuesday",
		"--one-shot",
	)
	require.Error(t, err)
	assert.Contains(t, out, "excluded from every restaurant")
}
