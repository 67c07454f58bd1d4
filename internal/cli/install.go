package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install GENERATOR...",
		Short: "Install generators",
		Long: `Install the latest version of one or more generators with npm.

Generators are installed globally unless explore_generators.installation_location
names an npm prefix. The post_install hook runs after each successful install.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.Context(), args)
		},
	}

	return cmd
}

func runInstall(ctx context.Context, names []string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range names {
		if err := a.explorer.InstallGenerator(ctx, name); err != nil {
			errs = append(errs, err)
		}
	}
	if err := stderrors.Join(errs...); err != nil {
		return fmt.Errorf("failed to install %d of %d generator(s): %w", len(errs), len(names), err)
	}
	return nil
}
