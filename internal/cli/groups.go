package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/internal/ui"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage named selection groups",
	Long: `Selection groups are named path sets saved per project under
.promptpack/groups.json. Paths are stored as given; loading a group
expands directories against the tree that exists at load time, so a
group follows files added or removed since it was saved.`,
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List selection groups for the project",
	Args:  cobra.NoArgs,
	RunE:  runGroupsList,
}

var groupsSaveCmd = &cobra.Command{
	Use:   "save <name> <path>...",
	Short: "Save (or overwrite) a selection group",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runGroupsSave,
}

var groupsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a group's file selection, expanded against the current tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsShow,
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a selection group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupsDelete,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
	groupsCmd.AddCommand(groupsListCmd, groupsSaveCmd, groupsShowCmd, groupsDeleteCmd)

	groupsCmd.PersistentFlags().String("root", "", "Project root directory (default: current directory)")
	groupsDeleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runGroupsList(cmd *cobra.Command, _ []string) error {
	root, err := resolveRoot(cmd, nil)
	if err != nil {
		return err
	}
	names, err := deps.Groups.List(root)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styleMuted.Render("(no selection groups)"))
		return nil
	}
	for _, name := range names {
		stored, err := deps.Groups.Paths(root, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", stylePrimary.Render(name),
			styleMuted.Render(fmt.Sprintf("(%d paths)", len(stored))))
	}
	return nil
}

func runGroupsSave(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd, nil)
	if err != nil {
		return err
	}
	name, paths := args[0], args[1:]
	if err := deps.Groups.Create(root, name, paths); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successLine(fmt.Sprintf(
		"saved group %q with %d paths", name, len(paths))))
	return nil
}

func runGroupsShow(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd, nil)
	if err != nil {
		return err
	}
	sess, err := openSession(cmd.Context(), root)
	if err != nil {
		return err
	}
	if err := deps.Groups.Load(root, args[0], sess.Index(), sess.Selection()); err != nil {
		return err
	}
	selected := sess.Selection().Selected()
	if len(selected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styleMuted.Render("(group resolves to no files)"))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(selected, "\n"))
	return nil
}

func runGroupsDelete(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(cmd, nil)
	if err != nil {
		return err
	}
	name := args[0]

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		ok, err := ui.Confirm(fmt.Sprintf("Delete selection group %q?", name))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), styleMuted.Render("aborted"))
			return nil
		}
	}

	if err := deps.Groups.Delete(root, name); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successLine(fmt.Sprintf("deleted group %q", name)))
	return nil
}
