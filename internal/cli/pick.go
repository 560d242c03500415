package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/internal/core/filter"
	"github.com/promptpack/promptpack/internal/prompt"
	"github.com/promptpack/promptpack/internal/ui"
	"github.com/promptpack/promptpack/internal/workspace"
)

var pickCmd = &cobra.Command{
	Use:   "pick [path]",
	Short: "Interactively select files",
	Long: `Open an interactive tree picker for the project. Confirm with enter
to print the selected paths; combine with --save-group to store the
selection, or --prompt to assemble a prompt from it directly.

Examples:
  promptpack pick
  promptpack pick ~/src/app --save-group api-layer
  promptpack pick --prompt -m "explain this module" --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	pickCmd.Flags().StringSlice("ext", nil, "Extension allow-list applied to the view")
	pickCmd.Flags().String("save-group", "", "Save the confirmed selection as a group")
	pickCmd.Flags().Bool("prompt", false, "Assemble a prompt from the confirmed selection")
	pickCmd.Flags().StringP("instructions", "m", "", "User instructions for --prompt")
	pickCmd.Flags().Bool("copy", false, "With --prompt, copy the result to the clipboard")
}

func runPick(cmd *cobra.Command, args []string) error {
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
	sess.SetFilters(workspace.Filters{Extensions: exts})

	globalExcl := deps.Exclusions.Global()
	localExcl := deps.Exclusions.Local(root)

	selected, err := ui.RunPicker(sess, globalExcl, localExcl)
	if err != nil {
		if errors.Is(err, ui.ErrPickerAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), styleMuted.Render("aborted"))
			return nil
		}
		return err
	}
	if len(selected) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), styleMuted.Render("(nothing selected)"))
		return nil
	}

	if group, _ := cmd.Flags().GetString("save-group"); group != "" {
		if err := deps.Groups.Create(root, group, selected); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), successLine(fmt.Sprintf(
			"saved group %q with %d files", group, len(selected))))
	}

	if doPrompt, _ := cmd.Flags().GetBool("prompt"); doPrompt {
		contents, err := deps.Loader.Load(cmd.Context(), root, selected)
		if err != nil {
			return err
		}
		instructions, _ := cmd.Flags().GetString("instructions")
		result := deps.Assembler.Assemble(prompt.Request{
			TreeText:     filter.RenderTextualTree(sess.Tree(), globalExcl, exts),
			Files:        contents,
			Instructions: instructions,
		})
		if doCopy, _ := cmd.Flags().GetBool("copy"); doCopy {
			if err := clipboard.WriteAll(result.Text); err != nil {
				return fmt.Errorf("copy prompt to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), successLine(fmt.Sprintf(
				"copied prompt to clipboard (%d files, ~%d tokens)", result.FileCount, result.TokenCount)))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(selected, "\n"))
	return nil
}
