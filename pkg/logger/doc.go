// Package logger builds the structured slog loggers used across the module.
//
// A Config, usually loaded from the environment, selects the level, the output
// format and an optional Sentry DSN:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.New(cfg, os.Stderr, requestIDExtractor)
//
// Context extractors run on every log call and add request-scoped attributes:
//
//	requestIDExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
// When SENTRY_DSN is set, warnings and errors are also forwarded to Sentry;
// errors become Sentry issues. Without a DSN, or if Sentry fails to start, only
// the local writer is used.
//
// Libraries in this module accept a *slog.Logger through options and default to
// NewNope, so nothing is printed unless the caller asks for it.
package logger
