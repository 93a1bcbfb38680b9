/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/barangay-directory/cmd"
	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/cristianoliveira/barangay-directory/internal/directory"
	"github.com/cristianoliveira/barangay-directory/internal/logging"
	"github.com/cristianoliveira/barangay-directory/internal/settings"
	"github.com/cristianoliveira/barangay-directory/internal/tui/state"
	"github.com/spf13/cobra"
)

type browseClient interface {
	controllerOpener
}

// runProgram starts the terminal UI. Tests replace it.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// NewBrowseCmd creates the browse command with explicit dependencies.
func NewBrowseCmd(client browseClient) *cobra.Command {
	if client == nil {
		panic("NewBrowseCmd: client dependency cannot be nil")
	}

	browseCmd := &cobra.Command{
		Use:   "browse [keywords...]",
		Short: "Open the interactive directory browser",
		Long: `Open the interactive directory browser.

KEYS:
    /              Search (Enter to apply, ESC to cancel)
    h/l, ←/→       Previous / next page
    j/k, ↑/↓       Move the cursor
    tab            Jump to the other column
    Space, Enter   Select or deselect the resident under the cursor
    d              Archive the selected resident (confirm with y)
    r              Reload the roster
    ESC            Clear the search, or quit
    q              Quit

Keywords given on the command line start the browser with that search.
Without keywords the browser reopens the last session's search and page,
saved in tui_settings_path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			// The alternate screen owns the terminal; keep stderr quiet.
			colors.SuppressEvents()

			m := state.NewModel(ctx,
				state.WithSuggestions(config.GetInt("suggestions", 3)),
				state.WithLogger(logging.Component("tui")),
			)
			if w, ok := client.(interface{ WarnHooksWith(func(string)) }); ok {
				w.WarnHooksWith(m.Warn)
			}
			ctrl, err := client.Controller(ctx, directory.WithPresenter(m))
			if err != nil {
				return err
			}
			sessionPath := settings.Path()
			if keywords := strings.Join(args, " "); keywords != "" {
				if err := ctrl.Search(keywords); err != nil {
					return fmt.Errorf("browse: %w", err)
				}
			} else if err := restoreSession(ctrl, sessionPath); err != nil {
				logging.Warn("session not restored", "path", sessionPath, "error", err)
			}
			m.Attach(ctrl)

			if err := runProgram(m); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			if err := settings.Save(sessionPath, settings.FromState(ctrl.State())); err != nil {
				colors.Warning(fmt.Sprintf("could not save session: %v", err))
			}
			return nil
		},
	}

	return browseCmd
}

func restoreSession(ctrl settings.Session, path string) error {
	s, err := settings.Load(path)
	if err != nil {
		return err
	}
	return s.Restore(ctrl)
}

// browseCmd represents the browse command
var browseCmd = NewBrowseCmd(client)

func init() {
	cmd.RootCmd.AddCommand(browseCmd)
	cmd.RootCmd.RunE = browseCmd.RunE
}
