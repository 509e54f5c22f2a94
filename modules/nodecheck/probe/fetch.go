package probe

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/cockroachdb/errors"
)

type tableRowsResponse struct {
	Rows []json.RawMessage `json:"rows"`
}

// Fetch counts the rows a node returns for a default fionames table query.
// Any failure counts as zero rows.
func (p *Prober) Fetch(ctx context.Context, nodeURL string) (int32, error) {
	defer observe("fetch", time.Now())

	client, err := p.client(nodeURL)
	if err != nil {
		return 0, err
	}
	resp, err := client.PostJSON(ctx, "/v1/chain/get_table_rows", map[string]any{
		"json":  true,
		"code":  "fio.address",
		"scope": "fio.address",
		"table": "fionames",
	})
	if err != nil {
		return 0, err
	}
	if !resp.IsSuccess() {
		return 0, unexpectedStatus(resp)
	}

	var body tableRowsResponse
	if err := resp.UnmarshalBody(&body); err != nil {
		return 0, err
	}
	if body.Rows == nil {
		return 0, errors.Wrap(errs.ProtocolMismatch, "rows not found")
	}
	return int32(len(body.Rows)), nil
}
