package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files <path>...",
	Short: "Print contents and token counts for project files",
	Long: `Load the given project-relative paths and print their contents with
token counts. Directories and binary files produce placeholders.

Examples:
  promptpack files internal/cli/root.go
  promptpack files --root ~/src/app --json main.go go.mod`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)

	filesCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	filesCmd.Flags().Bool("json", false, "Emit results as JSON")
}

func runFiles(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd, nil)
	if err != nil {
		return err
	}

	contents, err := deps.Loader.Load(cmd.Context(), root, args)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(contents)
	}

	out := cmd.OutOrStdout()
	for _, fc := range contents {
		switch {
		case fc.IsDirectory:
			fmt.Fprintf(out, "%s %s\n", stylePrimary.Render(fc.Path), styleMuted.Render("(directory)"))
		case fc.IsBinary:
			fmt.Fprintf(out, "%s %s\n", stylePrimary.Render(fc.Path),
				styleMuted.Render(fmt.Sprintf("(binary, %d bytes)", fc.Size)))
		default:
			fmt.Fprintf(out, "%s %s\n", stylePrimary.Render(fc.Path),
				styleMuted.Render(fmt.Sprintf("(%d tokens)", fc.TokenCount)))
			fmt.Fprintln(out, fc.Content)
		}
	}
	return nil
}
