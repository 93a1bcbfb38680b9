package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintHelpTextFollowsCommandOrder(t *testing.T) {
	root := &cobra.Command{Use: "barangay"}
	for _, name := range []string{"version", "list", "browse", "extra"} {
		root.AddCommand(&cobra.Command{Use: name, Short: name + " short", Run: func(*cobra.Command, []string) {}})
	}
	var out bytes.Buffer
	root.SetOut(&out)

	printHelpText(root)
	help := out.String()

	assert.Contains(t, help, "USAGE:\n    barangay [COMMAND] [OPTIONS]")
	browse := strings.Index(help, "browse short")
	list := strings.Index(help, "list short")
	ver := strings.Index(help, "version short")
	require.True(t, browse >= 0 && list >= 0 && ver >= 0, help)
	assert.Less(t, browse, list)
	assert.Less(t, list, ver)
	assert.NotContains(t, help, "extra short", "commands outside the order are not listed")
}

func TestSetupLoadsIsolatedConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("BARANGAY_CONFIG_PATH", "")
	t.Setenv("BARANGAY_DEBUG", "false")

	require.NoError(t, Setup("list"))
	assert.FileExists(t, filepath.Join(tmp, "config", "barangay", "config.toml"))
}

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "barangay", RootCmd.Use)
	assert.True(t, RootCmd.SilenceUsage)
	assert.NotEmpty(t, RootCmd.Version)
}
