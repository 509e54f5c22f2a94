package logger

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors/errbase"
)

// errorAttrReplacer flattens error values into their message so every output
// format prints the same text.
func errorAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == ErrorKey {
		if err, ok := attr.Value.Any().(error); ok && err != nil {
			return slog.String(attr.Key, err.Error())
		}
	}
	return attr
}

// middlewareErrorStackTrace adds the verbose error and its stack trace (when the
// error carries one) to records holding an error attribute.
func middlewareErrorStackTrace() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			var err error
			rec.Attrs(func(attr slog.Attr) bool {
				if attr.Key != ErrorKey && attr.Key != "err" {
					return true
				}
				if e, ok := attr.Value.Any().(error); ok && e != nil {
					err = e
					return false
				}
				return true
			})
			if err != nil {
				rec = rec.Clone()
				rec.AddAttrs(slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
				if provider, ok := err.(errbase.StackTraceProvider); ok {
					rec.AddAttrs(slog.Any(ErrorStackTraceKey, traceLines(provider.StackTrace())))
				}
			}

			return next(ctx, rec)
		}
	}
}

func traceLines(frames errbase.StackTrace) []string {
	lines := make([]string, 0, len(frames))

	// walk from the bottom to drop the runtime frames below main
	skipping := true
	for i := len(frames) - 1; i >= 0; i-- {
		pc := uintptr(frames[i]) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			lines = append(lines, "unknown")
			skipping = false
			continue
		}

		name := fn.Name()
		if skipping && strings.HasPrefix(name, "runtime.") {
			continue
		}
		skipping = false

		file, line := fn.FileLine(pc)
		lines = append(lines, fmt.Sprintf("%s %s:%d", name, file, line))
	}

	return lines[:len(lines):len(lines)]
}
