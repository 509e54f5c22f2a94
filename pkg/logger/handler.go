package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
)

const (
	LevelPanic = slog.Level(14)
	LevelFatal = slog.Level(16)
)

// Keys for log attributes.
const (
	LevelKey           = slog.LevelKey
	ErrorKey           = slogx.ErrorKey
	ErrorVerboseKey    = "error_verbose"
	ErrorStackTraceKey = "error_stacktrace"
)

type (
	handleFunc func(context.Context, slog.Record) error
	middleware func(handleFunc) handleFunc
)

// chainHandlers runs records through middlewares before the wrapped handler.
type chainHandlers struct {
	h           slog.Handler
	middlewares []middleware
}

func newChainHandlers(handler slog.Handler, middlewares ...middleware) *chainHandlers {
	return &chainHandlers{
		h:           handler,
		middlewares: middlewares,
	}
}

func (c *chainHandlers) Enabled(ctx context.Context, lvl slog.Level) bool {
	return c.h.Enabled(ctx, lvl)
}

func (c *chainHandlers) Handle(ctx context.Context, rec slog.Record) error {
	h := c.h.Handle
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		h = c.middlewares[i](h)
	}
	return h(ctx, rec)
}

func (c *chainHandlers) WithGroup(group string) slog.Handler {
	return newChainHandlers(c.h.WithGroup(group), c.middlewares...)
}

func (c *chainHandlers) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newChainHandlers(c.h.WithAttrs(attrs), c.middlewares...)
}

func attrReplacerChain(replacers ...func([]string, slog.Attr) slog.Attr) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, attr slog.Attr) slog.Attr {
		for _, replacer := range replacers {
			attr = replacer(groups, attr)
		}
		return attr
	}
}

// levelAttrReplacer names the panic and fatal levels.
func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 || attr.Key != LevelKey {
		return attr
	}
	l, ok := attr.Value.Any().(slog.Level)
	if !ok || l < LevelPanic {
		return attr
	}
	name, base := "PANIC", LevelPanic
	if l >= LevelFatal {
		name, base = "FATAL", LevelFatal
	}
	if l != base {
		name = fmt.Sprintf("%s%+d", name, l-base)
	}
	return slog.String(attr.Key, name)
}
