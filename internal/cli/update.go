package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/genhub/pkg/autoupdate"
	"github.com/glorpus-work/genhub/pkg/state"
	"github.com/spf13/cobra"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	var ifDue bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update installed generators",
		Long: `Reinstall every installed generator at its latest version.

With --if-due the update follows the same rules as the daily background update:
it only runs when the last one is more than a day old and auto_update is on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUpdate(cmd.Context(), ifDue)
		},
	}

	cmd.Flags().BoolVar(&ifDue, "if-due", false, "Only update when the daily update is due")

	return cmd
}

func runUpdate(ctx context.Context, ifDue bool) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}

	statePath := a.cfg.GetStatePath()
	store, err := state.Open(statePath)
	if err != nil {
		return fmt.Errorf("failed to open state store %s: %w", statePath, err)
	}
	defer func() { _ = store.Close() }()

	updater := autoupdate.New(a.explorer, store, a.store, a.explorer.Notifier())
	if ifDue {
		return updater.Run(ctx)
	}
	return updater.UpdateAll(ctx)
}
