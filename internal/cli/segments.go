package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprite-ai/critique/internal/critic"
)

var segmentsCmd = &cobra.Command{
	Use:   "segments <annotated.md>",
	Short: "Parse CriticMarkup into typed segments",
	Long: `Parse a CriticMarkup document back into a typed segment sequence
for consumption by a structured editor. Reads from stdin when the
path is "-". Malformed marker syntax passes through as unchanged
text; this command never fails on content.`,
	Args: cobra.ExactArgs(1),
	RunE: runSegments,
}

func init() {
	segmentsCmd.Flags().StringP("format", "f", "json", "output format: json or text")
}

func runSegments(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if args[0] == "-" {
		data, err = os.ReadFile("/dev/stdin")
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	segs := critic.Preprocess(string(data))

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(segs)
	case "text":
		for _, s := range segs {
			if s.Kind == critic.Substituted {
				fmt.Printf("%-12s %q -> %q\n", s.Kind, s.Old, s.New)
				continue
			}
			fmt.Printf("%-12s %q\n", s.Kind, s.Text)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json or text)", format)
	}
}
