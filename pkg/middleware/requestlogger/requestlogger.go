package requestlogger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/middleware/requestcontext"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type Config struct {
	// Disable drops successful request logs, failures are always logged.
	Disable bool `mapstructure:"disable"`

	WithRequestHeader    bool     `mapstructure:"request_header"`
	HiddenRequestHeaders []string `mapstructure:"hidden_request_headers"`

	// SkipPaths are never logged when successful, e.g. /metrics scrapes.
	SkipPaths []string `mapstructure:"skip_paths"`
}

// New logs one record per request after the handler chain completes.
func New(config Config) fiber.Handler {
	hidden := lo.SliceToMap(config.HiddenRequestHeaders, func(h string) (string, struct{}) {
		return strings.ToLower(strings.TrimSpace(h)), struct{}{}
	})
	skip := lo.SliceToMap(config.SkipPaths, func(p string) (string, struct{}) {
		return p, struct{}{}
	})

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := slog.LevelInfo
		attrs := []slog.Attr{
			slog.String("event", "api_request"),
			slog.Int64("latency", latency.Milliseconds()),
		}
		if err != nil || status >= http.StatusInternalServerError {
			level = slog.LevelError
			if err == nil {
				err = fiber.NewError(status)
			}
			attrs = append(attrs, slog.Any("error", err))
		}
		if level == slog.LevelInfo {
			if _, ok := skip[c.Path()]; ok || config.Disable {
				return errors.WithStack(err)
			}
		}

		request := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", requestcontext.GetClientIP(c.UserContext())),
			slog.String("user-agent", string(c.Context().UserAgent())),
			slog.Any("query", c.Queries()),
		}
		if config.WithRequestHeader {
			var headers []any
			for k, v := range c.GetReqHeaders() {
				if _, found := hidden[strings.ToLower(k)]; !found {
					headers = append(headers, slog.Any(k, v))
				}
			}
			request = append(request, slog.Group("header", headers...))
		}

		attrs = append(attrs,
			slog.Group("request", request...),
			slog.Group("response",
				slog.Int("status", status),
				slog.Int("length", len(c.Response().Body())),
			),
		)
		logger.LogAttrs(c.UserContext(), level, "Request Completed", attrs...)
		return errors.WithStack(err)
	}
}
