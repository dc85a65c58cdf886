// Package cli implements the tracegate command line interface.
package cli

import "github.com/spf13/cobra"

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:           "tracegate",
	Short:         "Inspect and dry-run trace admission configuration",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
