package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed generators",
		Long: `List the generators installed at the configured location.

Use --name to filter generators by name.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), nameFilter)
		},
	}

	cmd.Flags().StringVar(&nameFilter, "name", "", "Filter generators by name (partial match)")

	return cmd
}

type listedGenerator struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

func runList(ctx context.Context, nameFilter string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}

	generators := filterInstalled(a.npm.ListInstalledVersions(ctx, a.explorer.Location()), nameFilter)

	listed := make([]listedGenerator, 0, len(generators))
	for _, g := range generators {
		listed = append(listed, listedGenerator{Name: g.Name, Version: g.VersionString()})
	}
	if handled, err := writeStructured(os.Stdout, outputFormat(), listed); handled {
		return err
	}

	if len(listed) == 0 {
		fmt.Println("No generators installed")
		return nil
	}

	rows := make([][]string, 0, len(listed))
	for _, g := range listed {
		rows = append(rows, []string{g.Name, g.Version})
	}
	fmt.Println(renderTable([]string{"GENERATOR", "VERSION"}, rows))
	return nil
}

func filterInstalled(generators []model.InstalledGenerator, nameFilter string) []model.InstalledGenerator {
	if nameFilter == "" {
		return generators
	}
	out := make([]model.InstalledGenerator, 0, len(generators))
	for _, g := range generators {
		if strings.Contains(g.Name, nameFilter) {
			out = append(out, g)
		}
	}
	return out
}
