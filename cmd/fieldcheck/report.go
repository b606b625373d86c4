package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/fieldkit/pkg/field"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/schema"
)

type report struct {
	RunID    string         `json:"run_id"`
	Accepted int            `json:"accepted"`
	Rejected int            `json:"rejected"`
	Records  []recordResult `json:"records"`
}

type recordResult struct {
	Index  int          `json:"index"`
	OK     bool         `json:"ok"`
	Errors []cellResult `json:"errors,omitempty"`
}

type cellResult struct {
	Field  string       `json:"field"`
	Type   field.Type   `json:"type,omitempty"`
	Reason field.Reason `json:"reason"`
}

// validateRecords runs every record through the registry. Rejected cells end
// up in the report; any other failure aborts the run.
func validateRecords(ctx context.Context, log *slog.Logger, registry *field.Registry, fields []field.Descriptor, records []schema.Record) (report, error) {
	rep := report{Records: make([]recordResult, 0, len(records))}

	for i, rec := range records {
		extra := field.Extra{"record_index": strconv.Itoa(i)}
		err := registry.ValidateRecord(fields, rec.Fields, extra)
		if err == nil {
			rep.Accepted++
			rep.Records = append(rep.Records, recordResult{Index: i, OK: true})
			continue
		}

		errs := field.ExtractErrors(err)
		if errs == nil {
			log.ErrorContext(ctx, "record validation aborted", logger.Record(i), logger.Error(err))
			return rep, fmt.Errorf("record %d: %w", i, err)
		}

		result := recordResult{Index: i}
		for _, e := range errs {
			result.Errors = append(result.Errors, cellResult{
				Field:  e.Field.Key(),
				Type:   e.Field.Type,
				Reason: e.Reason,
			})
			log.InfoContext(ctx, "cell rejected",
				logger.Record(i),
				logger.FieldName(e.Field.Key()),
				logger.FieldType(string(e.Field.Type)),
				logger.Reason(string(e.Reason)),
			)
		}
		rep.Rejected++
		rep.Records = append(rep.Records, result)
	}
	return rep, nil
}
