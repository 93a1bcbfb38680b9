/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/barangay-directory/cmd"
	"github.com/cristianoliveira/barangay-directory/internal/format"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/spf13/cobra"
)

type showClient interface {
	GetRecord(ctx context.Context, id string) (resident.Resident, error)
}

// NewShowCmd creates the show command with explicit dependencies.
func NewShowCmd(client showClient) *cobra.Command {
	if client == nil {
		panic("NewShowCmd: client dependency cannot be nil")
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full record of a resident",
		Long: `Show the full record of a resident, archived or not.

USAGE:
    barangay show <id>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := client.GetRecord(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("show: %w", err)
			}
			return format.FormatResident(rec, showNow(), cmd.OutOrStdout())
		},
	}

	return showCmd
}

var showNow = time.Now

// showCmd represents the show command
var showCmd = NewShowCmd(client)

func init() {
	cmd.RootCmd.AddCommand(showCmd)
}
