package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/promptpack/promptpack/internal/workspace"
)

// resolveRoot picks the project root from the --root flag, the first
// positional argument, or the working directory, in that order.
func resolveRoot(cmd *cobra.Command, args []string) (string, error) {
	root, _ := cmd.Flags().GetString("root")
	if root == "" && len(args) > 0 {
		root = args[0]
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		root = cwd
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve project root %s: %w", root, err)
	}
	return abs, nil
}

// openSession builds a session for root and performs the initial tree
// fetch.
func openSession(ctx context.Context, root string) (*workspace.Session, error) {
	sess := workspace.NewSession(deps.Walker, deps.Logger)
	sess.SetProjectPath(root)
	if err := sess.Refresh(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}
