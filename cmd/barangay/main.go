/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"os"

	"github.com/cristianoliveira/barangay-directory/cmd"
	"github.com/cristianoliveira/barangay-directory/internal/colors"
)

func main() {
	colors.Event("startup", "main", "started", nil)
	err := cmd.Execute()
	_ = client.Close()
	if err != nil {
		colors.Event("startup", "main", "failed", err)
		os.Exit(1)
	}
	colors.Event("startup", "main", "completed", nil)
}
