package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devup",
	Short: "devup – macOS development environment bootstrapper",
	Long:  "devup converges a macOS machine onto a declared set of development tools and config files, idempotently.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: the full bootstrap run
		return runInstall(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
