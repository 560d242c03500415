package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/internal/core/filter"
	"github.com/promptpack/promptpack/internal/workspace"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print the filtered project tree",
	Long: `Print the project file tree as an indented listing, after applying
the global exclusion list and any view filters.

Examples:
  promptpack tree                       Tree of the current directory
  promptpack tree ~/src/app --ext .go   Only .go files
  promptpack tree --search handler      Subtrees whose names match "handler"
  promptpack tree --pattern '**/*_test.go'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	treeCmd.Flags().StringSlice("ext", nil, "Extension allow-list, e.g. --ext .go,.md")
	treeCmd.Flags().String("search", "", "Case-insensitive name search term")
	treeCmd.Flags().StringSlice("pattern", nil, "Wildcard patterns matched against path and name")
}

func runTree(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd, args)
	if err != nil {
		return err
	}

	sess, err := openSession(cmd.Context(), root)
	if err != nil {
		return err
	}

	exts, _ := cmd.Flags().GetStringSlice("ext")
	if len(exts) == 0 {
		exts = deps.Config.DefaultExtensions
	}
	search, _ := cmd.Flags().GetString("search")
	patterns, _ := cmd.Flags().GetStringSlice("pattern")

	sess.SetFilters(workspace.Filters{
		SearchTerm: search,
		Extensions: exts,
		Wildcards:  patterns,
	})

	text := filter.RenderTextualTree(sess.View(), deps.Exclusions.Global(), exts)
	if text == "" {
		fmt.Fprintln(cmd.OutOrStdout(), styleMuted.Render("(no matching files)"))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
