package chainclient

import (
	"context"
	"strconv"
	"strings"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

type voterRow struct {
	ID             uint64   `json:"id"`
	FIOAddress     string   `json:"fioaddress"`
	Owner          string   `json:"owner"`
	Proxy          string   `json:"proxy"`
	Producers      []string `json:"producers"`
	LastVoteWeight string   `json:"last_vote_weight"`
	IsProxy        int      `json:"is_proxy"`
}

func (r voterRow) toEntity() entity.Voter {
	return entity.Voter{
		ID:             r.ID,
		Owner:          r.Owner,
		Proxy:          strings.TrimSpace(r.Proxy),
		Producers:      r.Producers,
		LastVoteWeight: r.LastVoteWeight,
		IsProxy:        r.IsProxy == 1,
		FIOAddress:     strings.TrimSpace(r.FIOAddress),
	}
}

// GetVoters reads the whole eosio voters table page by page. Any page failure
// fails the whole snapshot, a partial snapshot is never returned.
func (c *Client) GetVoters(ctx context.Context) ([]entity.Voter, error) {
	var (
		voters     []entity.Voter
		lowerBound uint64
	)
	for page := 1; ; page++ {
		resp, err := getTableRows[voterRow](c, ctx, getTableRowsRequest{
			JSON:       true,
			Code:       "eosio",
			Scope:      "eosio",
			Table:      "voters",
			Limit:      strconv.Itoa(c.pageSize),
			LowerBound: strconv.FormatUint(lowerBound, 10),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "can't fetch voters page %d", page)
		}
		voters = append(voters, lo.Map(resp.Rows, func(row voterRow, _ int) entity.Voter {
			return row.toEntity()
		})...)

		logger.DebugContext(ctx, "Fetched voters page",
			slogx.Int("page", page),
			slogx.Int("rows", len(resp.Rows)),
			slogx.Int("total", len(voters)),
			slogx.Bool("more", resp.More),
		)

		if !resp.More || len(resp.Rows) == 0 {
			break
		}
		next := resp.Rows[len(resp.Rows)-1].ID + 1
		if next <= lowerBound {
			return nil, errors.Wrapf(errs.ProtocolMismatch, "voters pagination did not advance past id %d", lowerBound)
		}
		lowerBound = next
	}
	return voters, nil
}
