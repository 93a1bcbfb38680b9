package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/cristianoliveira/barangay-directory/internal/storage"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client over a fresh SQLite file.
func newTestClient(t *testing.T) *directoryClient {
	t.Helper()

	config.Set("search_mode", "any")
	config.Set("list_format", "grid")
	config.Set("suggestions", "3")
	config.Set("hooks_dir", "")
	config.Set("import_dedup", "name_birth")

	dir := t.TempDir()
	config.Set("tui_settings_path", filepath.Join(dir, "tui.toml"))

	path := filepath.Join(dir, "residents.db")
	c := newDirectoryClient(func() (storage.Storage, error) {
		return storage.Open(path)
	})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testResident(first, last string) resident.Resident {
	return resident.Resident{
		FirstName:       first,
		LastName:        last,
		BirthDate:       time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		YearOfResidency: resident.SinceBirth,
		Address1:        "1 Rizal Ave.",
	}
}

// seedNumbered adds n residents named "Reyes00, Ana", "Reyes01, Ana", ...
func seedNumbered(t *testing.T, c *directoryClient, n int) []string {
	t.Helper()

	ctx := context.Background()
	ctrl, err := c.Controller(ctx)
	require.NoError(t, err)

	ids := make([]string, n)
	for i := range ids {
		ids[i], err = ctrl.Insert(ctx, testResident("Ana", fmt.Sprintf("Reyes%02d", i)))
		require.NoError(t, err)
	}
	return ids
}

func run(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}
