// Package probe performs typed network probes against a single node and
// collapses every failure into the probe's failure value plus a reason.
package probe

import (
	"context"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/pkg/httpclient"
	"github.com/bpmon-network/bpmon/pkg/metrics"
	"github.com/cockroachdb/errors"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultBurstCount = 5
	MaxBurstCount     = 50

	// DefaultHistoryAccount is the account queried by the history probe.
	DefaultHistoryAccount = "tw4tjkmo4eyd"
)

type Config struct {
	Timeout        time.Duration
	HistoryAccount string
	BurstCount     int
	BurstPublicKey string
	Debug          bool
}

// Prober runs probes against remote nodes.
type Prober struct {
	conf Config
	now  func() time.Time
}

func New(conf Config) *Prober {
	if conf.Timeout <= 0 {
		conf.Timeout = DefaultTimeout
	}
	if conf.HistoryAccount == "" {
		conf.HistoryAccount = DefaultHistoryAccount
	}
	conf.BurstCount = ClampBurstCount(conf.BurstCount)
	return &Prober{
		conf: conf,
		now:  time.Now,
	}
}

// WithClock replaces the clock used by the staleness check.
func (p *Prober) WithClock(now func() time.Time) *Prober {
	p.now = now
	return p
}

// BurstCount returns the effective burst budget.
func (p *Prober) BurstCount() int {
	return p.conf.BurstCount
}

// ClampBurstCount bounds the configured burst budget to [1, MaxBurstCount], zero or less means the default.
func ClampBurstCount(n int) int {
	switch {
	case n <= 0:
		return DefaultBurstCount
	case n > MaxBurstCount:
		return MaxBurstCount
	default:
		return n
	}
}

func (p *Prober) client(nodeURL string) (*httpclient.Client, error) {
	client, err := httpclient.New(nodeURL, httpclient.Config{
		Timeout: p.conf.Timeout,
		Debug:   p.conf.Debug,
	})
	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, errs.ProtocolMismatch), "invalid node url")
	}
	return client, nil
}

func observe(probe string, start time.Time) {
	metrics.ProbeDuration.WithLabelValues(probe).Observe(time.Since(start).Seconds())
}

// Reason maps an error to its failure class, used as log and metrics label.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.TransportFailure), errors.Is(err, context.DeadlineExceeded):
		return "transport_failure"
	case errors.Is(err, errs.ProtocolMismatch):
		return "protocol_mismatch"
	case errors.Is(err, errs.DecisiveSignal):
		return "decisive_signal"
	case errors.Is(err, errs.ValidationSkipped):
		return "validation_skipped"
	default:
		return "unknown"
	}
}

func unexpectedStatus(resp *httpclient.HttpResponse) error {
	return errors.Wrapf(errs.ProtocolMismatch, "unexpected status code %d from %s", resp.StatusCode(), resp.URL)
}
