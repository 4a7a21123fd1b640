package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	iso20022 "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/codec"
)

type issueReport struct {
	Path     string `json:"path"`
	Location string `json:"location,omitempty"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Hint     string `json:"hint,omitempty"`
}

// fileReport is the outcome of validating one document.
type fileReport struct {
	File     string        `json:"file"`
	Message  string        `json:"message,omitempty"`
	Valid    bool          `json:"valid"`
	Issues   []issueReport `json:"issues,omitempty"`
	Warnings []issueReport `json:"warnings,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	var format, dir string
	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate ISO 20022 documents",
		Long: `Decode each document (XML or JSON, detected from the extension unless
--format is given) and check it against its message definition. The exit
status is non-zero when any document is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if dir != "" {
				more, err := documentsIn(dir)
				if err != nil {
					return err
				}
				files = append(files, more...)
			}
			if len(files) == 0 {
				return errors.New("validate: no documents (pass files or --dir)")
			}
			forced, err := parseFormatFlag(format)
			if err != nil {
				return err
			}
			if a.settings.Output != "text" && a.settings.Output != "json" {
				return fmt.Errorf("invalid --output %q (want text or json)", a.settings.Output)
			}

			reports := make([]fileReport, 0, len(files))
			invalid := 0
			for _, name := range files {
				rep, err := a.checkFile(cmd.Context(), name, forced)
				if err != nil {
					return err
				}
				if !rep.Valid {
					invalid++
				}
				reports = append(reports, rep)
			}
			if err := writeReports(cmd.OutOrStdout(), a.settings.Output, reports); err != nil {
				return err
			}
			a.log.Info().Int("documents", len(files)).Int("invalid", invalid).Msg("validation finished")
			if invalid > 0 {
				return fmt.Errorf("%d of %d: %w", invalid, len(files), errInvalidDocuments)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&format, "format", "", "input format (xml or json); detected when empty")
	f.StringVar(&dir, "dir", "", "validate every .xml and .json file in a directory")
	f.StringVarP(&a.settings.Output, "output", "o", a.settings.Output, "report format (text or json)")
	f.BoolVar(&a.settings.FailFast, "fail-fast", false, "stop at the first issue of each document")
	f.BoolVar(&a.settings.StrictChoice, "strict-choice", false, "require exactly one alternative in every choice")
	f.IntVar(&a.settings.MaxIssues, "max-issues", 0, "cap the issues reported per document (0 = unlimited)")
	f.BoolVar(&a.settings.RejectUnknown, "reject-unknown", false, "reject JSON fields that are not part of the message")
	return cmd
}

func (a *app) checkFile(ctx context.Context, name string, forced codec.Format) (fileReport, error) {
	rep := fileReport{File: name}
	data, err := os.ReadFile(name)
	if err != nil {
		return rep, fmt.Errorf("validate: %w", err)
	}
	format := forced
	if format == codec.Unknown {
		format = codec.DetectFormat(name, data)
	}
	dec, err := codec.Decode(ctx, bytes.NewReader(data), format, a.decodeOpt())
	rep.Warnings = toReports(dec.Warnings)
	if err != nil {
		if ctx.Err() != nil {
			return rep, ctx.Err()
		}
		var de *codec.DecodeError
		if errors.As(err, &de) && len(de.Issues) > 0 {
			rep.Issues = toReports(de.Issues)
		} else {
			rep.Issues = toReports(iso20022.Issues{iso20022.Root().Issue(iso20022.CodeParseError, err.Error())})
		}
		a.log.Debug().Str("file", name).Str("format", format.String()).Err(err).Msg("decode failed")
		return rep, nil
	}

	rep.Message = iso20022.MessageDefinition(dec.Message.Namespace())
	a.log.Debug().Str("file", name).Str("format", format.String()).Str("message", rep.Message).Msg("decoded")
	err = dec.Message.Validate(a.validateOpt())
	if err == nil {
		rep.Valid = true
		return rep, nil
	}
	iss, ok := iso20022.AsIssues(err)
	if !ok {
		return rep, fmt.Errorf("validate %s: %w", name, err)
	}
	rep.Issues = toReports(iss)
	return rep, nil
}

func toReports(iss iso20022.Issues) []issueReport {
	if len(iss) == 0 {
		return nil
	}
	out := make([]issueReport, len(iss))
	for i, it := range iss {
		out[i] = issueReport{Path: it.Path, Location: it.Location(), Code: it.Code, Message: it.Message, Hint: it.Hint}
	}
	return out
}

func writeReports(w io.Writer, output string, reports []fileReport) error {
	if output == "json" {
		b, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	for _, r := range reports {
		status := "[Valid]"
		if !r.Valid {
			status = "[Invalid]"
		}
		msg := r.Message
		if msg == "" {
			msg = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.File, msg, status)
		for _, it := range r.Issues {
			fmt.Fprintf(w, "  %s: %s: %s\n", where(it), it.Code, it.Message)
		}
		for _, it := range r.Warnings {
			fmt.Fprintf(w, "  warning %s: %s: %s\n", where(it), it.Code, it.Message)
		}
	}
	return nil
}

func where(it issueReport) string {
	if it.Location == "" {
		return "/"
	}
	return it.Location
}

// documentsIn lists the .xml and .json files of dir in name order.
func documentsIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".xml", ".json":
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func parseFormatFlag(s string) (codec.Format, error) {
	if s == "" {
		return codec.Unknown, nil
	}
	return codec.ParseFormat(s)
}
