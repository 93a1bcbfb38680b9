/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/cristianoliveira/barangay-directory/cmd"
	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/resident"
	"github.com/spf13/cobra"
)

type addClient interface {
	controllerOpener
}

const sinceBirth = "birth"

// NewAddCmd creates the add command with explicit dependencies.
func NewAddCmd(client addClient) *cobra.Command {
	if client == nil {
		panic("NewAddCmd: client dependency cannot be nil")
	}

	var r resident.Resident
	var birthFlag string
	var sinceFlag string

	addCmd := &cobra.Command{
		Use:   "add [OPTIONS]",
		Short: "Add a resident to the directory",
		Long: `barangay add - Add a resident to the directory

USAGE:
    barangay add --first <name> --last <name> --birth <YYYY-MM-DD> --address1 <text> [OPTIONS]

OPTIONS:
    --first <name>        First name (required)
    --middle <name>       Middle name
    --last <name>         Last name (required)
    --birth <date>        Birth date as YYYY-MM-DD (required)
    --since <YYYY-MM>     Month the resident moved in, or "birth" (default: birth)
    --address1 <text>     Address line 1 (required)
    --address2 <text>     Address line 2
    --photo <path>        Path to a photo
    -h, --help            Show this help

Prints the page and slot where the new resident appears.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			birth, err := parseBirthDate(birthFlag)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			r.BirthDate = birth
			r.YearOfResidency, r.MonthOfResidency, err = parseSince(sinceFlag)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}

			ctrl, err := client.Controller(commandContext(cmd))
			if err != nil {
				return err
			}
			id, err := ctrl.Insert(commandContext(cmd), r)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}

			state := ctrl.State()
			colors.Success(fmt.Sprintf("Added %s (%s) on page %d, slot %d",
				r.DisplayName(), id, state.Page, state.Selection.Slot+1))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	addCmd.Flags().StringVar(&r.FirstName, "first", "", "First name")
	addCmd.Flags().StringVar(&r.MiddleName, "middle", "", "Middle name")
	addCmd.Flags().StringVar(&r.LastName, "last", "", "Last name")
	addCmd.Flags().StringVar(&birthFlag, "birth", "", "Birth date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&sinceFlag, "since", sinceBirth, `Residency start (YYYY-MM) or "birth"`)
	addCmd.Flags().StringVar(&r.Address1, "address1", "", "Address line 1")
	addCmd.Flags().StringVar(&r.Address2, "address2", "", "Address line 2")
	addCmd.Flags().StringVar(&r.PhotoPath, "photo", "", "Path to a photo")

	return addCmd
}

// addCmd represents the add command.
var addCmd = NewAddCmd(client)

func init() {
	cmd.RootCmd.AddCommand(addCmd)
}

func parseBirthDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("--birth is required")
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --birth %q (want YYYY-MM-DD)", value)
	}
	return t, nil
}

// parseSince reads the residency start as year and month. "birth" maps to
// resident.SinceBirth with no month.
func parseSince(value string) (year, month int, err error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == sinceBirth {
		return resident.SinceBirth, 0, nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --since %q (want YYYY-MM or birth)", value)
	}
	return t.Year(), int(t.Month()), nil
}
