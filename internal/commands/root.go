package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecritures-dev/ecritures/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ecritures",
		Short:   "Shopify order exports to French sales journal entries",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTransformCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
