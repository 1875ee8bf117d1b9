package cmd

import (
	"fmt"
	"os"

	chewsexp "github.com/chewxy/sexp"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/circe/pkg/sexp"
)

var sexpCheckCmd = &cobra.Command{
	Use:   "sexp-check <file>",
	Short: "Cross-check a script against a reference S-expression parser",
	Long: `Parse a file with Circe's streaming reader and with a general-purpose
S-expression library, and report whether both agree on the top-level
structure. Useful when a script fails to load.`,
	Args: cobra.ExactArgs(1),
	RunE: runSexpCheck,
}

func init() {
	rootCmd.AddCommand(sexpCheckCmd)
}

func runSexpCheck(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	ours, err := sexp.ParseString(string(data))
	if err != nil {
		return fmt.Errorf("reader: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File size: %d bytes\n", len(data))
	fmt.Fprintf(out, "Top-level expressions: %d\n", len(ours))

	// The reference parser splits quoted strings on spaces, so only the
	// top-level shape is compared.
	ref, err := chewsexp.ParseString(string(data))
	if err != nil {
		fmt.Fprintf(out, "Reference parser failed: %v\n", err)
		return nil
	}
	if len(ours) != len(ref) {
		return fmt.Errorf("parsers disagree: %d top-level expressions, reference %d", len(ours), len(ref))
	}
	for i := range ours {
		if ours[i].IsLeaf() != ref[i].IsLeaf() {
			return fmt.Errorf("expression %d: leaf mismatch", i)
		}
		if !ours[i].IsLeaf() {
			fmt.Fprintf(out, "  #%d: %d elements (reference leaf count %d)\n", i, ours[i].LeafCount(), ref[i].LeafCount())
		}
	}
	fmt.Fprintln(out, "OK")
	return nil
}
