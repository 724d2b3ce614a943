// Package cli wires the critique commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "critique",
	Short: "Structural markdown diffs with CriticMarkup output",
	Long: `critique compares two versions of a markdown document at the block
level and renders the changes as CriticMarkup: insertions, deletions,
and substitutions marked inline with the surrounding unchanged prose.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(segmentsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
