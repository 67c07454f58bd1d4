package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall command.
func NewUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall GENERATOR...",
		Short: "Uninstall generators",
		Long: `Remove one or more generators with npm.

The post_uninstall hook runs after each successful uninstall.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUninstall(cmd.Context(), args)
		},
	}

	return cmd
}

func runUninstall(ctx context.Context, names []string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range names {
		if err := a.explorer.UninstallGenerator(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	if err := stderrors.Join(errs...); err != nil {
		return fmt.Errorf("failed to uninstall %d of %d generator(s): %w", len(errs), len(names), err)
	}
	return nil
}
