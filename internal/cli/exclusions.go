package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var exclusionsCmd = &cobra.Command{
	Use:   "exclusions",
	Short: "Manage exclusion layers",
	Long: `Two independent exclusion layers shape what promptpack sees.

The global layer hides matching paths from every view, recursively.
The local layer (per project, --local) leaves paths visible but skips
them during bulk select-all.`,
}

var exclusionsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the exclusion layers",
	Args:  cobra.NoArgs,
	RunE:  runExclusionsShow,
}

var exclusionsAddCmd = &cobra.Command{
	Use:   "add <pattern>...",
	Short: "Add patterns to an exclusion layer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExclusionsAdd,
}

var exclusionsRemoveCmd = &cobra.Command{
	Use:   "remove <pattern>...",
	Short: "Remove patterns from an exclusion layer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExclusionsRemove,
}

func init() {
	rootCmd.AddCommand(exclusionsCmd)
	exclusionsCmd.AddCommand(exclusionsShowCmd, exclusionsAddCmd, exclusionsRemoveCmd)

	exclusionsCmd.PersistentFlags().String("root", "", "Project root directory (default: current directory)")
	exclusionsCmd.PersistentFlags().Bool("local", false, "Operate on the project-local layer instead of the global one")
}

func runExclusionsShow(cmd *cobra.Command, _ []string) error {
	root, err := resolveRoot(cmd, nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, stylePrimary.Render("global"))
	printPatternList(cmd, deps.Exclusions.Global())
	fmt.Fprintln(out, stylePrimary.Render("local ")+styleMuted.Render(root))
	printPatternList(cmd, deps.Exclusions.Local(root))
	return nil
}

func printPatternList(cmd *cobra.Command, patterns []string) {
	out := cmd.OutOrStdout()
	if len(patterns) == 0 {
		fmt.Fprintln(out, styleMuted.Render("  (empty)"))
		return
	}
	for _, p := range patterns {
		fmt.Fprintln(out, "  "+p)
	}
}

func runExclusionsAdd(cmd *cobra.Command, args []string) error {
	return updateExclusions(cmd, func(current []string) []string {
		for _, p := range args {
			p = strings.TrimSpace(p)
			if p != "" && !slices.Contains(current, p) {
				current = append(current, p)
			}
		}
		return current
	})
}

func runExclusionsRemove(cmd *cobra.Command, args []string) error {
	return updateExclusions(cmd, func(current []string) []string {
		return slices.DeleteFunc(current, func(p string) bool {
			return slices.Contains(args, p)
		})
	})
}

func updateExclusions(cmd *cobra.Command, apply func([]string) []string) error {
	local, _ := cmd.Flags().GetBool("local")

	if local {
		root, err := resolveRoot(cmd, nil)
		if err != nil {
			return err
		}
		updated := apply(deps.Exclusions.Local(root))
		if err := deps.Exclusions.SetLocal(root, updated); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), successLine(fmt.Sprintf(
			"local exclusions updated (%d patterns)", len(updated))))
		return nil
	}

	updated := apply(deps.Exclusions.Global())
	if err := deps.Exclusions.SetGlobal(updated); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successLine(fmt.Sprintf(
		"global exclusions updated (%d patterns)", len(updated))))
	return nil
}
