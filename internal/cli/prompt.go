package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/internal/core/filter"
	"github.com/promptpack/promptpack/internal/core/selection"
	"github.com/promptpack/promptpack/internal/prompt"
	"github.com/promptpack/promptpack/internal/ui"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Assemble a prompt from selected files",
	Long: `Assemble an LLM prompt from the project tree, a set of selected
files, and optional instructions. The selection comes from a saved
group or from explicit paths; directory paths expand to their current
file descendants.

Examples:
  promptpack prompt --paths internal/cli --instructions "add --json output"
  promptpack prompt --group api-layer --copy
  promptpack prompt --group api-layer --preview`,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)

	promptCmd.Flags().String("root", "", "Project root directory (default: current directory)")
	promptCmd.Flags().String("group", "", "Selection group to load")
	promptCmd.Flags().StringSlice("paths", nil, "Explicit selection paths (files or directories)")
	promptCmd.Flags().StringP("instructions", "m", "", "User instructions appended to the prompt")
	promptCmd.Flags().StringSlice("ext", nil, "Extension allow-list for the tree map")
	promptCmd.Flags().Bool("copy", false, "Copy the prompt to the clipboard instead of printing")
	promptCmd.Flags().Bool("preview", false, "Render a markdown preview in the terminal")
	promptCmd.Flags().String("out", "", "Write the prompt to a file")
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	root, err := resolveRoot(cmd, nil)
	if err != nil {
		return err
	}
	sess, err := openSession(cmd.Context(), root)
	if err != nil {
		return err
	}

	group, _ := cmd.Flags().GetString("group")
	paths, _ := cmd.Flags().GetStringSlice("paths")

	switch {
	case group != "":
		if err := deps.Groups.Load(root, group, sess.Index(), sess.Selection()); err != nil {
			return err
		}
	case len(paths) > 0:
		sess.Selection().SetSelection(selection.ExpandLegacyPaths(paths, sess.Index()))
	default:
		return fmt.Errorf("nothing selected: pass --group or --paths")
	}

	selected := sess.Selection().Selected()
	if len(selected) == 0 {
		return fmt.Errorf("selection resolved to no files in %s", root)
	}

	contents, err := deps.Loader.Load(cmd.Context(), root, selected)
	if err != nil {
		return err
	}

	exts, _ := cmd.Flags().GetStringSlice("ext")
	instructions, _ := cmd.Flags().GetString("instructions")

	result := deps.Assembler.Assemble(prompt.Request{
		TreeText:     filter.RenderTextualTree(sess.Tree(), deps.Exclusions.Global(), exts),
		Files:        contents,
		Instructions: instructions,
	})

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := os.WriteFile(outPath, []byte(result.Text+"\n"), 0o644); err != nil {
			return fmt.Errorf("write prompt to %s: %w", outPath, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successLine(fmt.Sprintf(
			"wrote prompt to %s (%d files, ~%d tokens)", outPath, result.FileCount, result.TokenCount)))
		return nil
	}

	if doCopy, _ := cmd.Flags().GetBool("copy"); doCopy {
		if err := clipboard.WriteAll(result.Text); err != nil {
			return fmt.Errorf("copy prompt to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successLine(fmt.Sprintf(
			"copied prompt to clipboard (%d files, ~%d tokens)", result.FileCount, result.TokenCount)))
		return nil
	}

	if doPreview, _ := cmd.Flags().GetBool("preview"); doPreview {
		rendered, err := ui.RenderMarkdown(result.Text)
		if err != nil {
			// Preview is cosmetic; fall back to the raw prompt.
			deps.Logger.Warn("markdown preview failed, printing raw prompt", "error", err)
			rendered = result.Text
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Text)
	return nil
}
