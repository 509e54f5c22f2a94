package probe

import (
	"context"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/pkg/httpclient"
	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

type BurstResult struct {
	Target    int32
	Successes int32
}

// Passed reports whether every request of the burst succeeded.
func (r BurstResult) Passed() bool {
	return r.Target > 0 && r.Successes == r.Target
}

// Burst fires the configured number of concurrent balance requests and counts
// well-formed answers. Rate limited or malformed answers count as failures.
func (p *Prober) Burst(ctx context.Context, nodeURL string) (BurstResult, error) {
	defer observe("burst", time.Now())

	result := BurstResult{Target: int32(p.conf.BurstCount)}
	client, err := p.client(nodeURL)
	if err != nil {
		return result, err
	}

	var (
		successes = atomic.NewInt32(0)
		group     errgroup.Group
	)
	for i := 0; i < p.conf.BurstCount; i++ {
		group.Go(func() error {
			if err := p.balance(ctx, client); err != nil {
				return err
			}
			successes.Inc()
			return nil
		})
	}
	// every request runs to completion, Wait keeps the first failure
	err = group.Wait()

	result.Successes = successes.Load()
	return result, err
}

func (p *Prober) balance(ctx context.Context, client *httpclient.Client) error {
	resp, err := client.PostJSON(ctx, "/v1/chain/get_fio_balance", map[string]any{
		"fio_public_key": p.conf.BurstPublicKey,
	})
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return unexpectedStatus(resp)
	}

	var body map[string]any
	if err := resp.UnmarshalBody(&body); err != nil {
		return err
	}
	for _, key := range []string{"balance", "available", "staked", "srps"} {
		if _, ok := body[key].(float64); !ok {
			return errors.Wrapf(errs.ProtocolMismatch, "%s is not a number", key)
		}
	}
	if _, ok := body["roe"].(string); !ok {
		return errors.Wrap(errs.ProtocolMismatch, "roe is not a string")
	}
	return nil
}
