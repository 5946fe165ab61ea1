// Package main provides the entry point for the retriva CLI.
package main

import (
	"os"

	"github.com/retriva/retriva/cmd/retriva/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
