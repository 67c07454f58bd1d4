package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search the registry for generators",
		Long: `Search the npm registry for scaffolding generators.

Only packages carrying the yeoman-generator keyword are returned, ranked by
popularity. Use --tag to narrow the search, for example by author or topic.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return runSearch(cmd.Context(), query, tag)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Additional search term, e.g. an author or a recommended tag")

	return cmd
}

func runSearch(ctx context.Context, query, tag string) error {
	a, err := newApp(nil)
	if err != nil {
		return err
	}

	result, err := a.explorer.Search(ctx, query, tag)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if handled, err := writeStructured(os.Stdout, outputFormat(), result.Objects); handled {
		return err
	}

	if len(result.Objects) == 0 {
		fmt.Println("No generators found")
		return nil
	}

	rows := make([][]string, 0, len(result.Objects))
	for _, gen := range result.Objects {
		rows = append(rows, []string{
			gen.Package.Name,
			gen.Package.Version,
			truncate(gen.Package.Description, MaxSearchDescriptionLength),
		})
	}
	fmt.Println(renderTable([]string{"GENERATOR", "VERSION", "DESCRIPTION"}, rows))
	fmt.Printf("\nShowing %d of %d generator(s)\n", len(result.Objects), result.Total)

	return nil
}
