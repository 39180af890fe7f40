// Package cmd wires the isoval command line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "isoval",
	Short: "Validate ISO 20022 payment messages",
	Long: `isoval decodes ISO 20022 messages from XML, JSON or YAML, dispatches
them by their root tag and validates every field against the schema
constraints, reporting each violation with its full element path.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
