package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/critique/internal/critic"
	"github.com/sprite-ai/critique/internal/doctree"
	"github.com/sprite-ai/critique/internal/engine"
	"github.com/sprite-ai/critique/internal/source"
	"github.com/sprite-ai/critique/internal/textdiff"
	"github.com/sprite-ai/critique/internal/tui"
)

var diffCmd = &cobra.Command{
	Use:   "diff <before.md> <after.md>",
	Short: "Diff two markdown documents into CriticMarkup",
	Long: `Diff two versions of a markdown document. Blocks are aligned
structurally, each changed block is classified as a word-level edit or
an atomic substitution, and the result prints as CriticMarkup.

Examples:
  critique diff old.md new.md
  critique diff old.md new.md --granularity char
  critique diff --git README.md            # working tree vs HEAD
  critique diff old.md new.md --preview    # interactive TUI`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringP("granularity", "g", "word", "text diff granularity: word or char")
	diffCmd.Flags().Float64("para-threshold", 0, "divergence ratio above which a block renders as one substitution")
	diffCmd.Flags().Float64("sentence-threshold", 0, "per-sentence divergence ratio for substitution")
	diffCmd.Flags().Bool("git", false, "single path: compare working tree against HEAD")
	diffCmd.Flags().String("rev", "HEAD", "git revision for --git")
	diffCmd.Flags().StringP("output", "o", "", "write markup to file instead of stdout")
	diffCmd.Flags().Bool("preview", false, "open the rendered diff in the TUI")
	diffCmd.Flags().Bool("stat", false, "print change counts and exit")
}

func runDiff(cmd *cobra.Command, args []string) error {
	useGit, _ := cmd.Flags().GetBool("git")

	var pair *source.Pair
	var err error
	switch {
	case useGit && len(args) == 1:
		rev, _ := cmd.Flags().GetString("rev")
		pair, err = source.LoadGit(args[0], rev)
	case len(args) == 2:
		pair, err = source.LoadFiles(args[0], args[1])
	default:
		return fmt.Errorf("need two files, or one file with --git")
	}
	if err != nil {
		return err
	}

	return runPipeline(cmd, pair)
}

// runPipeline is shared by diff and patch: parse, align, classify,
// render, and dispatch the markup to the requested sink.
func runPipeline(cmd *cobra.Command, pair *source.Pair) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	before := doctree.Parse(pair.Before)
	after := doctree.Parse(pair.After)

	entries, err := engine.Diff(before, after, cfg)
	if err != nil {
		return fmt.Errorf("diffing %s: %w", pair.Label, err)
	}

	if stat, _ := cmd.Flags().GetBool("stat"); stat {
		return printStat(pair.Label, entries)
	}

	markup := critic.Render(entries)

	if preview, _ := cmd.Flags().GetBool("preview"); preview {
		return tui.Run(pair.Label, markup)
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		if err := os.WriteFile(out, []byte(markup), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "Markup written to %s\n", out)
		return nil
	}

	fmt.Println(markup)
	return nil
}

func configFromFlags(cmd *cobra.Command) (engine.Config, error) {
	cfg := engine.DefaultConfig()

	gran, _ := cmd.Flags().GetString("granularity")
	g, ok := textdiff.ParseGranularity(gran)
	if !ok {
		return cfg, fmt.Errorf("unknown granularity %q (want word or char)", gran)
	}
	cfg.Granularity = g

	if v, _ := cmd.Flags().GetFloat64("para-threshold"); v > 0 {
		cfg.ParagraphThreshold = v
	}
	if v, _ := cmd.Flags().GetFloat64("sentence-threshold"); v > 0 {
		cfg.SentenceThreshold = v
	}
	return cfg, nil
}

func printStat(label string, entries []engine.Entry) error {
	var matched, unchanged, granular, atomic, inserted, deleted int
	for _, e := range entries {
		switch e.Op {
		case engine.OpInsert:
			inserted++
		case engine.OpDelete:
			deleted++
		case engine.OpMatch:
			matched++
			switch e.Decision.Kind {
			case engine.Unchanged:
				unchanged++
			case engine.GranularEdit:
				granular++
			case engine.AtomicSubstitution:
				atomic++
			}
		}
	}

	fmt.Printf("%s\n", label)
	fmt.Printf("  %d block(s): %d matched (%d unchanged, %d edited, %d rewritten), %d inserted, %d deleted\n",
		matched+inserted+deleted, matched, unchanged, granular, atomic, inserted, deleted)
	return nil
}
