/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/barangay-directory/cmd"
	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/config"
	"github.com/cristianoliveira/barangay-directory/internal/format"
	"github.com/cristianoliveira/barangay-directory/internal/search"
	"github.com/spf13/cobra"
)

type listClient interface {
	controllerOpener
}

const listCommandLong = `List one page of the resident directory.

USAGE:
    barangay list [KEYWORDS...] [OPTIONS]

Keywords rank residents by how many of them appear in the name; residents
matching none are left out.

OPTIONS:
    --page <n>           Page to show (default: 1)
    --format=<format>    Output format: grid, list, json (default: list_format setting)
    -h, --help           Show this help`

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client listClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var pageFlag int
	var formatFlag string

	listCmd := &cobra.Command{
		Use:   "list [keywords...]",
		Short: "List residents, one page at a time",
		Long:  listCommandLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := listFormat(formatFlag)
			if err != nil {
				return err
			}

			ctrl, err := client.Controller(commandContext(cmd))
			if err != nil {
				return err
			}
			keywords := strings.Join(args, " ")
			if err := ctrl.Search(keywords); err != nil {
				return fmt.Errorf("list: %w", err)
			}
			if err := ctrl.GoToPage(pageFlag); err != nil {
				return fmt.Errorf("list: page %d of %d: %w", pageFlag, ctrl.State().PageCount(), err)
			}

			snap := ctrl.Snapshot()
			if err := format.NewFormatter(kind).FormatListing(format.ListingFromSnapshot(snap), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("list: %w", err)
			}

			if snap.Matches == 0 && !snap.Keywords.IsEmpty() && kind != format.FormatterTypeJSON {
				hints := search.Suggest(ctrl.State().Base, snap.Keywords, config.GetInt("suggestions", 3))
				if len(hints) > 0 {
					colors.Info("Did you mean: " + strings.Join(hints, ", ") + "?")
				}
			}
			return nil
		},
	}

	listCmd.Flags().IntVar(&pageFlag, "page", 1, "Page to show")
	listCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: grid, list, json")

	return listCmd
}

// listFormat resolves the --format flag, falling back to the list_format setting.
func listFormat(flag string) (format.FormatterType, error) {
	value := strings.ToLower(strings.TrimSpace(flag))
	if value == "" {
		value = config.Get("list_format", string(format.FormatterTypeGrid))
	}
	switch kind := format.FormatterType(value); kind {
	case format.FormatterTypeGrid, format.FormatterTypeList, format.FormatterTypeJSON:
		return kind, nil
	default:
		return "", fmt.Errorf("list: unknown format %q (want grid, list or json)", flag)
	}
}

// listCmd represents the list command
var listCmd = NewListCmd(client)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}
