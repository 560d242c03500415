package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "promptpack",
	Short: "promptpack: pack project files into an LLM prompt",
	Long: `promptpack points at a local project directory, filters its file
tree through layered exclusion policies, lets you select a subset of
files, and assembles the selection into a prompt for a language model.

Selections can be saved as named groups per project; a global ignore
list and per-project local exclusions shape what is visible and what
bulk selection picks up.`,
	Version:       version.GetVersion(),
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("error:")+" "+err.Error())
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("promptpack %s\n", version.GetVersion()))
}
