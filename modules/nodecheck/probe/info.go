package probe

import (
	"context"
	"strings"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/pkg/httpclient"
	"github.com/cockroachdb/errors"
)

// MaxHeadBlockLag is the largest tolerated distance between the head block time and now.
const MaxHeadBlockLag = 15 * time.Second

type InfoOutcome int

const (
	InfoNoResponse InfoOutcome = iota
	InfoHealthy
	InfoStale
	InfoChainMismatch
)

func (o InfoOutcome) String() string {
	switch o {
	case InfoHealthy:
		return "healthy"
	case InfoStale:
		return "stale"
	case InfoChainMismatch:
		return "chain_mismatch"
	default:
		return "no_response"
	}
}

type InfoResult struct {
	Outcome       InfoOutcome
	HTTPStatus    int
	ServerVersion string
	HeadBlockTime *time.Time
	ChainID       string

	// Responded is true when a 2xx response arrived, CORS is only evaluated then.
	Responded bool

	// AllowOrigin is the Access-Control-Allow-Origin header of the info response.
	AllowOrigin string

	Err error
}

// ResultCode is the code persisted on the node check record.
func (r InfoResult) ResultCode() int32 {
	switch r.Outcome {
	case InfoHealthy:
		return int32(r.HTTPStatus)
	case InfoStale:
		return entity.CheckStatusStale
	case InfoChainMismatch:
		return entity.CheckStatusChainMismatch
	default:
		return entity.CheckStatusNoResponse
	}
}

type getInfoResponse struct {
	ServerVersionString string `json:"server_version_string"`
	ChainID             string `json:"chain_id"`
	HeadBlockTime       string `json:"head_block_time"`
}

// Info queries /v1/chain/get_info and classifies the node against the expected chain id.
func (p *Prober) Info(ctx context.Context, nodeURL string, expectedChainID string) InfoResult {
	defer observe("info", time.Now())

	client, err := p.client(nodeURL)
	if err != nil {
		return InfoResult{Err: err}
	}
	resp, err := client.Get(ctx, "/v1/chain/get_info", httpclient.RequestOptions{})
	if err != nil {
		return InfoResult{Err: err}
	}
	if !resp.IsSuccess() {
		return InfoResult{Err: unexpectedStatus(resp)}
	}

	result := InfoResult{
		Outcome:     InfoNoResponse,
		HTTPStatus:  resp.StatusCode(),
		Responded:   true,
		AllowOrigin: resp.HeaderValue("Access-Control-Allow-Origin"),
	}

	var body getInfoResponse
	if err := resp.UnmarshalBody(&body); err != nil {
		result.Err = err
		return result
	}
	if body.ServerVersionString == "" {
		result.Err = errors.Wrap(errs.ProtocolMismatch, "server version not found")
		return result
	}
	headBlockTime, err := parseHeadBlockTime(body.HeadBlockTime)
	if err != nil {
		result.Err = err
		return result
	}

	result.ServerVersion = body.ServerVersionString
	result.ChainID = body.ChainID
	result.HeadBlockTime = &headBlockTime

	if lag := p.now().Sub(headBlockTime).Abs(); lag > MaxHeadBlockLag {
		result.Outcome = InfoStale
		result.Err = errors.Wrapf(errs.DecisiveSignal, "head block is %s off", lag)
		return result
	}
	if !strings.EqualFold(body.ChainID, expectedChainID) {
		result.Outcome = InfoChainMismatch
		result.Err = errors.Wrapf(errs.DecisiveSignal, "chain id %q does not match %q", body.ChainID, expectedChainID)
		return result
	}

	result.Outcome = InfoHealthy
	return result
}

var headBlockTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// parseHeadBlockTime parses the naive head block timestamp as UTC.
func parseHeadBlockTime(s string) (time.Time, error) {
	for _, layout := range headBlockTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Wrapf(errs.ProtocolMismatch, "invalid head block time %q", s)
}
