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

type editClient interface {
	controllerOpener
}

// NewEditCmd creates the edit command with explicit dependencies.
func NewEditCmd(client editClient) *cobra.Command {
	if client == nil {
		panic("NewEditCmd: client dependency cannot be nil")
	}

	var (
		first, middle, last  string
		birthFlag, sinceFlag string
		address1, address2   string
		photo                string
	)

	editCmd := &cobra.Command{
		Use:   "edit <id> [OPTIONS]",
		Short: "Edit a resident",
		Long: `barangay edit - Change the fields of an active resident

USAGE:
    barangay edit <id> [OPTIONS]

OPTIONS:
    --first <name>        First name
    --middle <name>       Middle name (empty clears it)
    --last <name>         Last name
    --birth <date>        Birth date as YYYY-MM-DD
    --since <YYYY-MM>     Month the resident moved in, or "birth"
    --address1 <text>     Address line 1
    --address2 <text>     Address line 2 (empty clears it)
    --photo <path>        Path to a photo
    -h, --help            Show this help

Only the options given are changed. Prints the page and slot where the
resident now appears.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			id := args[0]
			if cmd.Flags().NFlag() == 0 {
				return fmt.Errorf("edit: nothing to change; pass at least one option")
			}

			ctrl, err := client.Controller(ctx)
			if err != nil {
				return err
			}
			if err := ctrl.SelectID(ctx, id); err != nil {
				return fmt.Errorf("edit: %w", err)
			}
			r := *ctrl.Selected()
			before := r.DisplayName()

			flags := cmd.Flags()
			if flags.Changed("first") {
				r.FirstName = first
			}
			if flags.Changed("middle") {
				r.MiddleName = middle
			}
			if flags.Changed("last") {
				r.LastName = last
			}
			if flags.Changed("birth") {
				if r.BirthDate, err = parseBirthDate(birthFlag); err != nil {
					return fmt.Errorf("edit: %w", err)
				}
			}
			if flags.Changed("since") {
				if r.YearOfResidency, r.MonthOfResidency, err = parseSince(sinceFlag); err != nil {
					return fmt.Errorf("edit: %w", err)
				}
			}
			if flags.Changed("address1") {
				r.Address1 = address1
			}
			if flags.Changed("address2") {
				r.Address2 = address2
			}
			if flags.Changed("photo") {
				r.PhotoPath = photo
			}

			if err := ctrl.Update(ctx, id, r); err != nil {
				return fmt.Errorf("edit: %w", err)
			}

			state := ctrl.State()
			name := r.DisplayName()
			if name != before {
				name = before + " -> " + name
			}
			colors.Success(fmt.Sprintf("Updated %s on page %d, slot %d",
				name, state.Page, state.Selection.Slot+1))
			return nil
		},
	}

	editCmd.Flags().StringVar(&first, "first", "", "First name")
	editCmd.Flags().StringVar(&middle, "middle", "", "Middle name")
	editCmd.Flags().StringVar(&last, "last", "", "Last name")
	editCmd.Flags().StringVar(&birthFlag, "birth", "", "Birth date (YYYY-MM-DD)")
	editCmd.Flags().StringVar(&sinceFlag, "since", "", `Residency start (YYYY-MM) or "birth"`)
	editCmd.Flags().StringVar(&address1, "address1", "", "Address line 1")
	editCmd.Flags().StringVar(&address2, "address2", "", "Address line 2")
	editCmd.Flags().StringVar(&photo, "photo", "", "Path to a photo")

	return editCmd
}

// editCmd represents the edit command.
var editCmd = NewEditCmd(client)

func init() {
	cmd.RootCmd.AddCommand(editCmd)
}
