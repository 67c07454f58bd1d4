package cli

import (
	"context"
	"fmt"

	"github.com/glorpus-work/genhub/internal/logger"
	"github.com/glorpus-work/genhub/internal/server"
	"github.com/glorpus-work/genhub/pkg/autoupdate"
	"github.com/glorpus-work/genhub/pkg/metrics"
	"github.com/glorpus-work/genhub/pkg/state"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var (
		addr         string
		noAutoUpdate bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator browser backend",
		Long: `Start the backend the generator browser UI connects to.

The UI talks to genhub over a websocket at /rpc. Prometheus metrics are served
at /metrics and a liveness probe at /healthz. Installed generators are updated
in the background at most once a day unless auto_update is disabled.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), addr, noAutoUpdate)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to settings.listen_addr)")
	cmd.Flags().BoolVar(&noAutoUpdate, "no-auto-update", false, "Skip the daily update of installed generators")

	return cmd
}

func runServe(ctx context.Context, addr string, noAutoUpdate bool) error {
	m := metrics.New()
	a, err := newApp(m)
	if err != nil {
		return err
	}
	a.store.Watch()

	statePath := a.cfg.GetStatePath()
	store, err := state.Open(statePath)
	if err != nil {
		return fmt.Errorf("failed to open state store %s: %w", statePath, err)
	}
	defer func() { _ = store.Close() }()

	if !noAutoUpdate {
		updater := autoupdate.New(a.explorer, store, a.store, a.explorer.Notifier())
		go func() {
			if err := updater.Run(ctx); err != nil {
				logger.Warn("auto update finished with errors", logger.Fields{"error": err.Error()})
			}
		}()
	}

	if addr == "" {
		addr = a.cfg.Settings.ListenAddr
	}
	return server.New(a.explorer, m).Run(ctx, addr)
}
