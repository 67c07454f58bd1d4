package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRecommendedCmd creates the recommended command.
func NewRecommendedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommended",
		Short: "Show the recommended search tags",
		Long:  "Print the search tags configured in explore_generators.search_query, without duplicates",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			a, err := newApp(nil)
			if err != nil {
				return err
			}
			tags := a.explorer.RecommendedQuery()
			if handled, err := writeStructured(os.Stdout, outputFormat(), tags); handled {
				return err
			}
			for _, tag := range tags {
				fmt.Println(tag)
			}
			return nil
		},
	}
}
