package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// writeFixtures drops a small preferences CSV and reservations YAML into a
// temp dir and returns their paths.
func writeFixtures(t *testing.T) (prefsPath, resPath string) {
	t.Helper()
	dir := t.TempDir()

	prefs := `Timestamp,Email Address,Dining Out Days,Chez Panisse,Nopa
2026-01-05,alice@corp.test,tuesday,Have to eat here,Don't want to eat here
2026-01-05,bob@corp.test,tuesday,Want to eat here,Neutral
2026-01-05,carol@corp.test,tuesday,Want to eat here,Don't want to eat here
`
	prefsPath = filepath.Join(dir, "preferences.csv")
	require.NoError(t, os.WriteFile(prefsPath, []byte(prefs), 0o644))

	reservations := `reservations:
  - restaurant: "Chez Panisse"
    day: tuesday
    capacity: 4
    status: confirmed
`
	resPath = filepath.Join(dir, "reservations.yaml")
	require.NoError(t, os.WriteFile(resPath, []byte(reservations), 0o644))

	return prefsPath, resPath
}

// runCommand executes the command with args and returns combined output.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}
