package probe

import (
	"context"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/cockroachdb/errors"
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// Reachable dials the node endpoint over TCP. Seed and producer nodes speak
// the p2p protocol, so an open port is the only signal they give.
func (p *Prober) Reachable(ctx context.Context, endpoint string) (bool, error) {
	defer observe("reachability", time.Now())

	address, err := dialAddress(endpoint)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.conf.Timeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return false, errors.Wrapf(errors.Mark(err, errs.TransportFailure), "can't dial %s", address)
	}
	_ = conn.Close()
	return true, nil
}

// dialAddress accepts both URLs and bare host:port endpoints.
func dialAddress(endpoint string) (string, error) {
	if !strings.Contains(endpoint, "://") {
		host, port, err := net.SplitHostPort(endpoint)
		if err != nil || host == "" || port == "" {
			return "", errors.Wrapf(errs.ProtocolMismatch, "invalid endpoint %q", endpoint)
		}
		return net.JoinHostPort(host, port), nil
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return "", errors.Wrapf(errs.ProtocolMismatch, "invalid endpoint %q", endpoint)
	}
	port := u.Port()
	if port == "" {
		port = defaultPorts[u.Scheme]
	}
	if port == "" {
		return "", errors.Wrapf(errs.ProtocolMismatch, "endpoint %q has no port", endpoint)
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}
