package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [path]...",
	Short: "Estimate token counts",
	Long: `Estimate token counts for the given project files, or for text piped
on stdin when no paths are given.

Examples:
  promptpack tokens main.go internal/cli/root.go
  git diff | promptpack tokens`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().String("root", "", "Project root directory (default: current directory)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		fmt.Fprintln(out, deps.Counter.Count(string(text)))
		return nil
	}

	root, err := resolveRoot(cmd, nil)
	if err != nil {
		return err
	}
	contents, err := deps.Loader.Load(cmd.Context(), root, args)
	if err != nil {
		return err
	}

	total := 0
	for _, fc := range contents {
		if fc.TokenCount > 0 {
			total += fc.TokenCount
		}
		fmt.Fprintf(out, "%8d  %s\n", fc.TokenCount, fc.Path)
	}
	fmt.Fprintf(out, "%8d  total\n", total)
	return nil
}
