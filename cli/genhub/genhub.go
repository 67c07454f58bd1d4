package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glorpus-work/genhub/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	verbose      bool
	noColor      bool
	outputFormat string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genhub",
		Short: "Browse, install and uninstall scaffolding generators",
		Long: `genhub manages npm scaffolding generators with:
- Server: the backend of the generator browser UI (genhub serve)
- CLI: search, install, uninstall, list and update generators
- Hooks: Tengo scripts run after generator lifecycle operations`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format (table, json, yaml)")

	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor
	cli.OutputFormat = &outputFormat

	cmd.AddCommand(
		cli.NewServeCmd(),
		cli.NewSearchCmd(),
		cli.NewInstallCmd(),
		cli.NewUninstallCmd(),
		cli.NewListCmd(),
		cli.NewUpdateCmd(),
		cli.NewRecommendedCmd(),
		cli.NewConfigCmd(),
		cli.NewHookCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
