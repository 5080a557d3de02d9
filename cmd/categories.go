package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/marquee/catalog"
)

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the listing categories in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s %-12s %s\n", "#", "SEGMENT", "SECTION")
		for i, c := range catalog.Categories() {
			fmt.Fprintf(out, "%-4d %-12s %s\n", i+1, c.PathSegment(), c.Label())
		}
		return nil
	},
}
