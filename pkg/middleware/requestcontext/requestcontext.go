// Package requestcontext moves per request values (request id, client ip)
// into the request user context and its logger.
package requestcontext

import (
	"context"

	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type Option func(ctx context.Context, c *fiber.Ctx) context.Context

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		for _, opt := range opts {
			ctx = opt(ctx, c)
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

type (
	requestIdKey struct{}
	clientIPKey  struct{}
)

// GetRequestId returns the request id set by [WithRequestId], or empty.
func GetRequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

// GetClientIP returns the client ip set by [WithClientIP], or empty.
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// WithRequestId reuses the id from the requestid middleware, or the request
// header, or generates one.
func WithRequestId() Option {
	return func(ctx context.Context, c *fiber.Ctx) context.Context {
		requestId, ok := c.Locals(requestIdLocalsKey).(string)
		if !ok || requestId == "" {
			requestId = c.Get(fiber.HeaderXRequestID)
			if requestId == "" {
				requestId = newRequestId()
			}
			c.Set(fiber.HeaderXRequestID, requestId)
			c.Locals(requestIdLocalsKey, requestId)
		}

		ctx = context.WithValue(ctx, requestIdKey{}, requestId)
		return logger.WithContext(ctx, "requestId", requestId)
	}
}
