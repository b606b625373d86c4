// Package logger builds the *slog.Logger shared by the field registry and the
// fieldcheck command.
//
// New assembles a handler from functional options: the output format (json,
// text, or pretty, see ParseFormat for user-supplied names), the minimum level, static attributes, and ContextExtractor
// callbacks that copy request-scoped values such as a run id from a
// context.Context into every record.
//
// The pretty format uses github.com/lmittmann/tint and only emits ANSI colors
// when the output is a terminal.
//
// Attribute helpers in attr.go (FieldType, FieldName, Reason, RunID, ...) keep
// key names consistent across packages.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "fieldcheck"),
//	    logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//	        id, ok := ctx.Value(runIDKey{}).(string)
//	        return logger.RunID(id), ok
//	    }),
//	)
//	log.InfoContext(ctx, "record rejected", logger.FieldName("Price"), logger.Reason(reason))
package logger
