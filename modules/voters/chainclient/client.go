// Package chainclient reads the voters table and the address registry of a FIO API node.
package chainclient

import (
	"context"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/pkg/httpclient"
	"github.com/cockroachdb/errors"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultPageSize = 2500

	getTableRowsPath = "/v1/chain/get_table_rows"
)

type Config struct {
	Timeout  time.Duration
	PageSize int
	Debug    bool
}

type Client struct {
	client   *httpclient.Client
	pageSize int
	now      func() time.Time
}

func New(nodeURL string, conf Config) (*Client, error) {
	if conf.Timeout <= 0 {
		conf.Timeout = DefaultTimeout
	}
	if conf.PageSize <= 0 {
		conf.PageSize = DefaultPageSize
	}
	client, err := httpclient.New(nodeURL, httpclient.Config{
		Timeout: conf.Timeout,
		Debug:   conf.Debug,
	})
	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, errs.InvalidArgument), "invalid node url")
	}
	return &Client{
		client:   client,
		pageSize: conf.PageSize,
		now:      time.Now,
	}, nil
}

// URL returns the node url the client talks to.
func (c *Client) URL() string {
	return c.client.BaseURL().String()
}

type getTableRowsRequest struct {
	JSON          bool   `json:"json"`
	Code          string `json:"code"`
	Scope         string `json:"scope"`
	Table         string `json:"table"`
	Limit         string `json:"limit,omitempty"`
	LowerBound    string `json:"lower_bound,omitempty"`
	UpperBound    string `json:"upper_bound,omitempty"`
	IndexPosition int    `json:"index_position,omitempty"`
	KeyType       string `json:"key_type,omitempty"`
	Reverse       bool   `json:"reverse"`
}

type getTableRowsResponse[T any] struct {
	Rows []T  `json:"rows"`
	More bool `json:"more"`
}

func getTableRows[T any](c *Client, ctx context.Context, req getTableRowsRequest) (getTableRowsResponse[T], error) {
	var result getTableRowsResponse[T]
	resp, err := c.client.PostJSON(ctx, getTableRowsPath, req)
	if err != nil {
		return result, errors.Wrapf(err, "can't query %s table", req.Table)
	}
	if !resp.IsSuccess() {
		return result, errors.Wrapf(errs.ProtocolMismatch, "unexpected status code %d from %s", resp.StatusCode(), resp.URL)
	}
	if err := resp.UnmarshalBody(&result); err != nil {
		return result, errors.WithStack(err)
	}
	if result.Rows == nil {
		return result, errors.Wrapf(errs.ProtocolMismatch, "rows not found in %s response", req.Table)
	}
	return result, nil
}
