// Package cli wires the jfetch commands.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "jfetch",
	Short:   "A JSON-first HTTP client for the terminal",
	Version: version,
	Long: `jfetch issues a single HTTP request and treats the response as JSON:
decoded bodies, classified failures, and nothing else. Responses can be
filtered with JSONPath expressions or validated against a JSON Schema.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(putCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(benchCmd)
}
