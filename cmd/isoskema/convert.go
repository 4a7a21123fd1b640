package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/isoskema/codec"
)

func newConvertCmd(a *app) *cobra.Command {
	var to, from, out string
	cmd := &cobra.Command{
		Use:   "convert --to json|xml <file>",
		Short: "Convert a document between XML and JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := codec.ParseFormat(to)
			if err != nil {
				return err
			}
			source, err := parseFormatFlag(from)
			if err != nil {
				return err
			}
			name := args[0]
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("convert: %w", err)
			}
			if source == codec.Unknown {
				source = codec.DetectFormat(name, data)
			}
			dec, err := codec.Decode(cmd.Context(), bytes.NewReader(data), source, a.decodeOpt())
			if err != nil {
				return fmt.Errorf("convert %s: %w", name, err)
			}
			for _, w := range dec.Warnings {
				a.log.Warn().Str("file", name).Str("path", w.Path).Msg(w.Message)
			}

			encode := func(w io.Writer) error { return codec.Encode(w, dec.Message, target) }
			if out == "" {
				err = encode(cmd.OutOrStdout())
			} else {
				err = writeFile(out, encode)
			}
			if err != nil {
				return fmt.Errorf("convert %s: %w", name, err)
			}
			a.log.Debug().Str("file", name).Str("from", source.String()).Str("to", target.String()).Msg("converted")
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "output format (xml or json)")
	cmd.Flags().StringVar(&from, "format", "", "input format (xml or json); detected when empty")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// writeFile creates path and fills it with encode. A failed encode or close
// removes the file so no partial output is left behind.
func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
	}
	return err
}
