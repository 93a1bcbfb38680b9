/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/cristianoliveira/barangay-directory/internal/errors"
	"github.com/cristianoliveira/barangay-directory/internal/logging"
	"github.com/cristianoliveira/barangay-directory/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "barangay",
	Short: "Browse and maintain the barangay resident directory.",
	Long: `Browse and maintain the barangay resident directory.

Running barangay without a command opens the interactive browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return Setup(cmd.Name())
	},
}

// commandOrder is the order commands are listed in the help text.
var commandOrder = []string{
	"browse",
	"list",
	"show",
	"add",
	"edit",
	"archive",
	"import",
	"help",
	"version",
}

// Setup loads the configuration and starts the run log for command. A log
// that cannot start only produces a warning.
func Setup(command string) error {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false) && !config.GetBool("debug", false))
	if err := logging.Start(command); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
	return nil
}

// Execute runs the root command and reports a failure on the console.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	defer func() { _ = logging.Stop() }()

	err := RootCmd.ExecuteContext(context.Background())
	if err != nil {
		errors.Report(errors.NewDefaultCLIHandler(), err)
	}
	return err
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpCommand(helpCmd)
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
			return
		}
		printHelpText(cmd)
	})
}

// helpCmd represents the help command
var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show this help message",
	Long:  `Show this help message.`,
	Run: func(cmd *cobra.Command, args []string) {
		printHelpText(cmd.Root())
	},
}

func printHelpText(cmd *cobra.Command) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-22s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`%s

Browse and maintain the barangay resident directory.

USAGE:
    barangay [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
    -v, --version   Show version

CONFIGURATION:
    %s (override with BARANGAY_CONFIG_PATH)
`, version.Banner(-1), strings.Join(cmdLines, "\n"), config.Get("config_dir", "~/.config/barangay")+"/config.toml")
	_, _ = fmt.Fprint(cmd.OutOrStdout(), helpText)
}
