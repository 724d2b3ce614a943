package cli

import (
	"github.com/spf13/cobra"

	"github.com/sprite-ai/critique/internal/source"
)

var patchCmd = &cobra.Command{
	Use:   "patch <doc.md> <changes.patch>",
	Short: "Diff a document against itself with a unified diff applied",
	Long: `Apply a unified diff (as produced by git diff or diff -u) to a
markdown document and render the resulting structural changes as
CriticMarkup. Useful for reviewing a proposed edit before it lands:

  git diff HEAD~1 -- docs/guide.md > guide.patch
  critique patch docs/guide.md guide.patch`,
	Args: cobra.ExactArgs(2),
	RunE: runPatch,
}

func init() {
	patchCmd.Flags().StringP("granularity", "g", "word", "text diff granularity: word or char")
	patchCmd.Flags().Float64("para-threshold", 0, "divergence ratio above which a block renders as one substitution")
	patchCmd.Flags().Float64("sentence-threshold", 0, "per-sentence divergence ratio for substitution")
	patchCmd.Flags().StringP("output", "o", "", "write markup to file instead of stdout")
	patchCmd.Flags().Bool("preview", false, "open the rendered diff in the TUI")
	patchCmd.Flags().Bool("stat", false, "print change counts and exit")
}

func runPatch(cmd *cobra.Command, args []string) error {
	pair, err := source.LoadPatch(args[0], args[1])
	if err != nil {
		return err
	}
	return runPipeline(cmd, pair)
}
