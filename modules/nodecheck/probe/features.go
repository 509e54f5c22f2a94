package probe

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/pkg/httpclient"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// MaxIndexerTimeOffset is the largest tolerated NodeosRPC time offset in milliseconds.
const MaxIndexerTimeOffset = 1_800_000

type getActionsResponse struct {
	LastIrreversibleBlock json.RawMessage `json:"last_irreversible_block"`
}

// History reports whether the node serves the v1 history plugin.
func (p *Prober) History(ctx context.Context, nodeURL string) (bool, error) {
	defer observe("history", time.Now())

	client, err := p.client(nodeURL)
	if err != nil {
		return false, err
	}
	resp, err := client.PostJSON(ctx, "/v1/history/get_actions", map[string]any{
		"account_name": p.conf.HistoryAccount,
	})
	if err != nil {
		return false, err
	}
	if !resp.IsSuccess() {
		return false, unexpectedStatus(resp)
	}

	var body getActionsResponse
	if err := resp.UnmarshalBody(&body); err != nil {
		return false, err
	}
	if len(body.LastIrreversibleBlock) == 0 || string(body.LastIrreversibleBlock) == "null" {
		return false, errors.Wrap(errs.ProtocolMismatch, "last_irreversible_block not found")
	}
	return true, nil
}

type healthService struct {
	Service     string `json:"service"`
	Status      string `json:"status"`
	ServiceData struct {
		TimeOffset *float64 `json:"time_offset"`
	} `json:"service_data"`
}

type healthResponse struct {
	Health []healthService `json:"health"`
}

// Indexer reports whether the node runs a healthy secondary indexer (Hyperion).
func (p *Prober) Indexer(ctx context.Context, nodeURL string) (bool, error) {
	defer observe("indexer", time.Now())

	client, err := p.client(nodeURL)
	if err != nil {
		return false, err
	}
	resp, err := client.Get(ctx, "/v2/health", httpclient.RequestOptions{})
	if err != nil {
		return false, err
	}
	if !resp.IsSuccess() {
		return false, unexpectedStatus(resp)
	}

	var body healthResponse
	if err := resp.UnmarshalBody(&body); err != nil {
		return false, err
	}
	rpc, ok := lo.Find(body.Health, func(h healthService) bool {
		return h.Service == "NodeosRPC"
	})
	if !ok {
		return false, errors.Wrap(errs.ProtocolMismatch, "NodeosRPC service not found")
	}
	if rpc.Status != "OK" {
		return false, errors.Wrapf(errs.ProtocolMismatch, "NodeosRPC status is %q", rpc.Status)
	}
	offset := rpc.ServiceData.TimeOffset
	if offset == nil {
		return false, errors.Wrap(errs.ProtocolMismatch, "NodeosRPC time offset not found")
	}
	if *offset > MaxIndexerTimeOffset || *offset < -MaxIndexerTimeOffset {
		return false, errors.Wrapf(errs.ProtocolMismatch, "NodeosRPC time offset %vms out of range", *offset)
	}
	return true, nil
}
