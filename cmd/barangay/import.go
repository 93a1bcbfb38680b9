/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/barangay-directory/cmd"
	"github.com/cristianoliveira/barangay-directory/internal/colors"
	"github.com/cristianoliveira/barangay-directory/internal/dedup"
	"github.com/cristianoliveira/barangay-directory/internal/seed"
	"github.com/spf13/cobra"
)

type importClient interface {
	controllerOpener
	DuplicateIndex(ctx context.Context, c dedup.Criteria) (*dedup.Index, error)
}

// NewImportCmd creates the import command with explicit dependencies.
func NewImportCmd(client importClient) *cobra.Command {
	if client == nil {
		panic("NewImportCmd: client dependency cannot be nil")
	}

	var (
		dryRunFlag bool
		dedupFlag  string
	)

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import residents from a YAML or TOML file",
		Long: `Import residents from a YAML (.yaml, .yml) or TOML (.toml) file.

The file holds a "residents" list; each entry uses the keys first_name,
middle_name, last_name, birth_date (YYYY-MM-DD), year_of_residency,
month_of_residency, address1, address2 and photo_path. A year_of_residency
of 0 or -1 means the resident has lived here since birth.

Invalid rows are reported and skipped. So are rows matching a resident
already in the directory or earlier in the file; import_dedup picks the
match (name, name_birth or off). A failed insert stops the import.

USAGE:
    barangay import <file> [--dry-run]

OPTIONS:
    --dry-run     Validate the file without importing
    --dedup       Duplicate check: name, name_birth or off (default from config)
    -h, --help    Show this help`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			ctrl, err := client.Controller(ctx)
			if err != nil {
				return err
			}

			criteria := dedup.Load()
			if dedupFlag != "" {
				criteria = dedup.ParseCriteria(dedupFlag)
			}
			index, err := client.DuplicateIndex(ctx, criteria)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			stats, err := seed.Import(ctx, ctrl, args[0], seed.Options{DryRun: dryRunFlag, Index: index})
			for _, rowErr := range stats.Errors {
				colors.Warning(rowErr.Error())
			}
			for _, rowErr := range stats.Warnings {
				colors.Warning("imported with error: " + rowErr.Error())
			}
			if err != nil {
				if stats.Imported > 0 {
					colors.Info(fmt.Sprintf("%d residents were imported before the failure", stats.Imported))
				}
				return fmt.Errorf("import: %w", err)
			}

			if dryRunFlag {
				colors.Info(fmt.Sprintf("Dry run: %d of %d residents are valid", stats.Total-stats.Skipped, stats.Total))
				return nil
			}
			colors.Success(fmt.Sprintf("Imported %d of %d residents (%d skipped)", stats.Imported, stats.Total, stats.Skipped))
			return nil
		},
	}

	importCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Validate the file without importing")
	importCmd.Flags().StringVar(&dedupFlag, "dedup", "", "Duplicate check: name, name_birth or off")

	return importCmd
}

// importCmd represents the import command
var importCmd = NewImportCmd(client)

func init() {
	cmd.RootCmd.AddCommand(importCmd)
}
