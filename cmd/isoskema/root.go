package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	iso20022 "github.com/reoring/isoskema"
	"github.com/reoring/isoskema/codec"
	"github.com/reoring/isoskema/i18n"

	_ "github.com/reoring/isoskema/acmt"
	_ "github.com/reoring/isoskema/auth"
	_ "github.com/reoring/isoskema/camt"
	_ "github.com/reoring/isoskema/head"
)

// errInvalidDocuments is returned by validate after the report is printed.
var errInvalidDocuments = errors.New("invalid documents")

// app carries the state shared by the subcommands.
type app struct {
	settings   settings
	configPath string
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{settings: defaultSettings(), log: zerolog.Nop()}
	cmd := &cobra.Command{
		Use:   "isoskema",
		Short: "Validate and convert ISO 20022 messages",
		Long: `isoskema checks ISO 20022 documents against the facets of their XSD
(lengths, patterns, code lists, cardinality and choices) and converts them
between XML and the JSON envelope {"xmlns": ..., "Document": ...}.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	pf.BoolVarP(&a.settings.Verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.settings.Lang, "lang", a.settings.Lang, "language of issue messages (en, ja)")
	pf.StringVar(&a.settings.DuplicateKeys, "duplicate-keys", a.settings.DuplicateKeys, "duplicate JSON keys: ignore, warn or error")
	pf.IntVar(&a.settings.MaxDepth, "max-depth", 0, "reject JSON input nested deeper than this (0 = unlimited)")

	cmd.AddCommand(newValidateCmd(a), newConvertCmd(a), newSchemaCmd(a), newListCmd(), newPatternsCmd())
	return cmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errInvalidDocuments) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		fc, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		fc.overlay(&a.settings, cmd.Flags().Changed)
	}
	if !slices.Contains(i18n.Languages(), a.settings.Lang) {
		return fmt.Errorf("unsupported language %q", a.settings.Lang)
	}
	if _, ok := iso20022.ParseSeverity(a.settings.DuplicateKeys); !ok {
		return fmt.Errorf("invalid --duplicate-keys %q (want ignore, warn or error)", a.settings.DuplicateKeys)
	}
	if a.settings.MaxDepth < 0 {
		return fmt.Errorf("invalid --max-depth %d", a.settings.MaxDepth)
	}
	i18n.SetLanguage(a.settings.Lang)
	a.log = newLogger(cmd.ErrOrStderr(), a.settings.Verbose)
	a.log.Debug().
		Str("config", a.configPath).
		Str("lang", a.settings.Lang).
		Str("duplicate_keys", a.settings.DuplicateKeys).
		Int("max_depth", a.settings.MaxDepth).
		Msg("settings loaded")
	return nil
}

func (a *app) decodeOpt() codec.DecodeOpt {
	sev, _ := iso20022.ParseSeverity(a.settings.DuplicateKeys)
	return codec.DecodeOpt{
		OnDuplicateKey: sev,
		RejectUnknown:  a.settings.RejectUnknown,
		MaxIssues:      a.settings.MaxIssues,
		MaxDepth:       a.settings.MaxDepth,
	}
}

func (a *app) validateOpt() iso20022.ValidateOpt {
	return iso20022.ValidateOpt{
		FailFast:     a.settings.FailFast,
		StrictChoice: a.settings.StrictChoice,
		MaxIssues:    a.settings.MaxIssues,
	}
}
