/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"

	"github.com/cristianoliveira/barangay-directory/cmd"
	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/spf13/cobra"
)

type archiveClient interface {
	controllerOpener
}

// NewArchiveCmd creates the archive command with explicit dependencies.
func NewArchiveCmd(client archiveClient) *cobra.Command {
	if client == nil {
		panic("NewArchiveCmd: client dependency cannot be nil")
	}

	archiveCmd := &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a resident",
		Long: `Archive a resident by id.

Archived residents leave the directory listing; their record is kept and
can still be read with "barangay show <id>".

USAGE:
    barangay archive <id>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			ctrl, err := client.Controller(ctx)
			if err != nil {
				return err
			}
			if err := ctrl.SelectID(ctx, args[0]); err != nil {
				return fmt.Errorf("archive: %w", err)
			}
			name := args[0]
			if rec := ctrl.Selected(); rec != nil {
				name = rec.DisplayName()
			}
			if err := ctrl.Delete(ctx); err != nil {
				return fmt.Errorf("archive: %w", err)
			}
			colors.Success("Archived " + name)
			return nil
		},
	}

	return archiveCmd
}

// archiveCmd represents the archive command
var archiveCmd = NewArchiveCmd(client)

func init() {
	cmd.RootCmd.AddCommand(archiveCmd)
}
