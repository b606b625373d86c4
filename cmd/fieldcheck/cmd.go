package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/schema"
)

var errRecordsRejected = errors.New("one or more records were rejected")

type runIDKey struct{}

func runIDFromContext(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return logger.RunID(id), ok
}

// newLogger fails on an unknown log format instead of letting
// logger.WithFormat panic on user input.
func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "fieldcheck"),
		logger.WithOutput(w),
		logger.WithContextExtractors(runIDFromContext),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, fmt.Errorf("%sLOG_FORMAT: %w", envPrefix, err)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

func newRootCmd() *cobra.Command {
	var (
		cfg appConfig
		log *slog.Logger
	)

	root := &cobra.Command{
		Use:           "fieldcheck",
		Short:         "Validate record writes against table field types",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			l, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("configuring logger: %w", err)
			}
			log = l
			return nil
		},
	}

	root.AddCommand(
		newTypesCmd(),
		newValidateCmd(func() *slog.Logger { return log }),
	)
	return root
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported field types",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := field.NewDefaultRegistry()
			if err != nil {
				return err
			}
			for _, typ := range registry.Types() {
				fmt.Fprintln(cmd.OutOrStdout(), typ)
			}
			return nil
		},
	}
}

func newValidateCmd(getLogger func() *slog.Logger) *cobra.Command {
	var (
		fieldsPath  string
		recordsPath string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate records against field descriptors",
		Long: `The validate command reads field descriptors from a YAML file and a record
write request from a JSON file (or stdin with "-"), and reports every rejected cell.
It exits with status 1 when any record is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := getLogger()
			started := time.Now()
			runID := uuid.NewString()
			ctx := context.WithValue(cmd.Context(), runIDKey{}, runID)

			fields, err := schema.LoadFields(fieldsPath)
			if err != nil {
				return fmt.Errorf("loading fields: %w", err)
			}
			records, err := schema.LoadRecords(recordsPath)
			if err != nil {
				return fmt.Errorf("loading records: %w", err)
			}

			registry, err := field.NewDefaultRegistry(field.WithLogger(log))
			if err != nil {
				return fmt.Errorf("building registry: %w", err)
			}
			if err := registry.CheckFields(fields); err != nil {
				return fmt.Errorf("checking fields: %w", err)
			}

			rep, err := validateRecords(ctx, log, registry, fields, records)
			if err != nil {
				return err
			}
			rep.RunID = runID
			log.InfoContext(ctx, "validation finished",
				slog.Int("accepted", rep.Accepted),
				slog.Int("rejected", rep.Rejected),
				logger.Duration(time.Since(started)),
			)

			if asJSON {
				err = writeJSON(cmd.OutOrStdout(), rep)
			} else {
				err = writeText(cmd.OutOrStdout(), rep)
			}
			if err != nil {
				return err
			}
			if rep.Rejected > 0 {
				return errRecordsRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fieldsPath, "fields", "f", "", "path to the YAML field descriptor file")
	cmd.Flags().StringVarP(&recordsPath, "records", "r", "-", `path to the JSON records file, "-" for stdin`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	_ = cmd.MarkFlagRequired("fields")
	return cmd
}

func writeJSON(w io.Writer, rep report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func writeText(w io.Writer, rep report) error {
	for _, rec := range rep.Records {
		if rec.OK {
			if _, err := fmt.Fprintf(w, "record %d: ok\n", rec.Index); err != nil {
				return err
			}
			continue
		}
		for _, cell := range rec.Errors {
			if _, err := fmt.Fprintf(w, "record %d: %s: %s\n", rec.Index, cell.Field, cell.Reason); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d accepted, %d rejected\n", rep.Accepted, rep.Rejected)
	return err
}
