package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	iso20022 "github.com/reoring/isoskema"
)

func newSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "schema <message-id|namespace>",
		Short:   "Print the JSON Schema of a message",
		Example: "  isoskema schema camt.054.001.08",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := iso20022.New(iso20022.NamespaceFor(args[0]))
			if err != nil {
				return err
			}
			s, err := iso20022.JSONSchema(m)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return fmt.Errorf("schema: %w", err)
			}
			a.log.Debug().Str("message", iso20022.MessageDefinition(m.Namespace())).Int("defs", len(s.Defs)).Msg("schema generated")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
			return err
		},
	}
}
