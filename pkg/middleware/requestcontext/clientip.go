package requestcontext

import (
	"context"
	"net"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type WithClientIPConfig struct {
	// TrustedHeader names a header carrying the client ip set by a trusted
	// edge (e.g. CF-Connecting-IP). It wins over X-Forwarded-For when valid.
	TrustedHeader string `mapstructure:"trusted_header"`

	// TrustedProxiesIP lists the CIDRs of every proxy in front of the server.
	// X-Forwarded-For is walked backwards to the first untrusted address.
	TrustedProxiesIP []string `mapstructure:"trusted_proxies_ip"`
}

// WithClientIP resolves the client ip with X-Forwarded-For spoofing protection.
// Without trusted proxies the first forwarded address is used.
func WithClientIP(config WithClientIPConfig) (Option, error) {
	proxies, err := parseCIDRs(config.TrustedProxiesIP)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return func(ctx context.Context, c *fiber.Ctx) context.Context {
		return context.WithValue(ctx, clientIPKey{}, resolveClientIP(c, config.TrustedHeader, proxies))
	}, nil
}

func resolveClientIP(c *fiber.Ctx, trustedHeader string, proxies []*net.IPNet) string {
	if trustedHeader != "" {
		if ip := c.Get(trustedHeader); net.ParseIP(ip) != nil {
			return ip
		}
	}

	forwarded := c.IPs()
	if len(forwarded) == 0 {
		return c.IP()
	}
	for i := len(forwarded) - 1; i >= 0 && len(proxies) > 0; i-- {
		ip := net.ParseIP(forwarded[i])
		if ip == nil {
			continue
		}
		trusted := lo.ContainsBy(proxies, func(n *net.IPNet) bool { return n.Contains(ip) })
		if !trusted {
			return forwarded[i]
		}
	}
	return forwarded[0]
}

func parseCIDRs(ranges []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, r := range ranges {
		_, ipnet, err := net.ParseCIDR(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse CIDR for %q", r)
		}
		nets = append(nets, ipnet)
	}
	return nets, nil
}
