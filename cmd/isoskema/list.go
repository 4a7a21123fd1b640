package main

import (
	"fmt"
	"reflect"
	"text/tabwriter"

	"github.com/spf13/cobra"

	iso20022 "github.com/reoring/isoskema"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MESSAGE\tTYPE\tNAMESPACE")
			for _, ns := range iso20022.Namespaces() {
				m, err := iso20022.New(ns)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", iso20022.MessageDefinition(ns), reflect.TypeOf(m).Elem(), ns)
			}
			return tw.Flush()
		},
	}
}
