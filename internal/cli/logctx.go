package cli

import (
	"context"
	"log/slog"

	"github.com/anishsharma21/cassius-frontend-sub001/pkg/logger"
)

type (
	commandKey struct{}
	pathKey    struct{}
)

func withCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

func withPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathKey{}, path)
}

// logExtractors tag every record with the running subcommand and, while a
// post is processed, its file path.
var logExtractors = []logger.ContextExtractor{
	stringAttr(commandKey{}, "command"),
	stringAttr(pathKey{}, "path"),
}

func stringAttr(key any, name string) logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			return slog.String(name, v), true
		}
		return slog.Attr{}, false
	}
}
