// nolint: sloglint
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var (
	// minimum reporting level for the logger
	lvl = new(slog.LevelVar)

	// top-level logger
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: levelAttrReplacer,
	}))
)

func init() {
	lvl.Set(slog.LevelDebug)
	slog.SetDefault(logger)
}

// Config is the logger configuration.
type Config struct {
	// Output is the log format, "text" (default) or "json".
	Output string `mapstructure:"output"`

	// Level is the minimum reporting level: debug, info (default), warn or error.
	Level string `mapstructure:"level"`

	// Debug forces the debug level and adds sources and error stack traces.
	Debug bool `mapstructure:"debug"`
}

// Init replaces the global logger and the slog default logger.
func Init(cfg Config) error {
	return initWithWriter(cfg, os.Stdout)
}

func initWithWriter(cfg Config, w io.Writer) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return errors.WithStack(err)
	}

	options := &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: attrReplacerChain(levelAttrReplacer, errorAttrReplacer),
	}
	var middlewares []middleware
	if cfg.Debug {
		level = slog.LevelDebug
		options.AddSource = true
		middlewares = append(middlewares, middlewareErrorStackTrace())
	}
	lvl.Set(level)

	var handler slog.Handler
	switch strings.ToLower(cfg.Output) {
	case "json":
		handler = slog.NewJSONHandler(w, options)
	case "", "text":
		handler = slog.NewTextHandler(w, options)
	default:
		return errors.Errorf("unsupported log output %q", cfg.Output)
	}

	logger = slog.New(newChainHandlers(handler, middlewares...))
	slog.SetDefault(logger)
	return nil
}

// ParseLevel parses a level name, empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", s)
	}
	return level, nil
}

// SetLevel sets the minimum reporting level and returns the previous one.
func SetLevel(level slog.Level) (old slog.Level) {
	old = lvl.Level()
	lvl.Set(level)
	return old
}

// With returns a Logger that includes the given attributes in each output.
func With(args ...any) *slog.Logger {
	return logger.With(args...)
}

// Panic logs at [LevelPanic] and then panics.
func Panic(msg string, args ...any) {
	log(context.Background(), logger, LevelPanic, msg, args...)
	panic(msg)
}

// Fatal logs at [LevelFatal] followed by a call to [os.Exit](1).
func Fatal(msg string, args ...any) {
	log(context.Background(), logger, LevelFatal, msg, args...)
	os.Exit(1)
}

// LogAttrs emits a record with attrs from the logger in ctx.
func LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	l := FromContext(ctx)
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}
	r := slog.NewRecord(time.Now(), level, msg, callerPC(3))
	r.AddAttrs(attrs...)
	_ = l.Handler().Handle(ctx, r)
}

// log must be called directly by an exported logging function.
func log(ctx context.Context, l *slog.Logger, level slog.Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}
	r := slog.NewRecord(time.Now(), level, msg, callerPC(4))
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}

// callerPC returns the pc skip frames up, counting runtime.Callers and callerPC.
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	return pcs[0]
}
