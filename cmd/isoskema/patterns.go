package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	iso20022 "github.com/reoring/isoskema"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Print the pattern facets known to the validator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tCOMPILED\tPATTERN")
			for _, p := range iso20022.Patterns() {
				fmt.Fprintf(tw, "%s\t%t\t%s\n", p.Name(), p.Compiled(), p.Expr())
			}
			return tw.Flush()
		},
	}
}
