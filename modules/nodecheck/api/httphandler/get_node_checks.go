package httphandler

import (
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

const (
	defaultChecksLimit = 10
	maxChecksLimit     = 100
)

type getNodeChecksRequest struct {
	ID    int64 `params:"id"`
	Limit int32 `query:"limit"`
}

func (r *getNodeChecksRequest) Validate() error {
	var errList []error
	if r.ID <= 0 {
		errList = append(errList, errors.New("id must be a positive integer"))
	}
	if r.Limit < 0 || r.Limit > maxChecksLimit {
		errList = append(errList, errors.Errorf("limit must be between 1 and %d", maxChecksLimit))
	}
	if r.Limit == 0 {
		r.Limit = defaultChecksLimit
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type nodeCheckResult struct {
	Timestamp     time.Time  `json:"timestamp"`
	ServerVersion string     `json:"serverVersion"`
	HeadBlockTime *time.Time `json:"headBlockTime"`
	CORS          bool       `json:"cors"`
	Status        int32      `json:"status"`
}

type fetchCheckResult struct {
	Timestamp time.Time `json:"timestamp"`
	Results   int32     `json:"results"`
}

type burstCheckResult struct {
	Timestamp   time.Time `json:"timestamp"`
	Status      bool      `json:"status"`
	BurstTarget int32     `json:"burstTarget"`
	BurstResult int32     `json:"burstResult"`
}

type getNodeChecksResult struct {
	NodeID      int64              `json:"nodeId"`
	Status      string             `json:"status"`
	NodeChecks  []nodeCheckResult  `json:"nodeChecks"`
	FetchChecks []fetchCheckResult `json:"fetchChecks"`
	BurstChecks []burstCheckResult `json:"burstChecks"`
}

type getNodeChecksResponse = HttpResponse[getNodeChecksResult]

// GetNodeChecks returns the latest evidence recorded for a node.
func (h *HttpHandler) GetNodeChecks(ctx *fiber.Ctx) error {
	var req getNodeChecksRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid node id")
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errs.WithPublicMessage(err, "invalid query")
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	node, err := h.dg.GetNodeByID(ctx.UserContext(), req.ID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("node not found")
		}
		return errors.Wrap(err, "error during GetNodeByID")
	}

	nodeChecks, err := h.dg.GetRecentNodeChecks(ctx.UserContext(), node.ID, req.Limit)
	if err != nil {
		return errors.Wrap(err, "error during GetRecentNodeChecks")
	}
	fetchChecks, err := h.dg.GetRecentFetchChecks(ctx.UserContext(), node.ID, req.Limit)
	if err != nil {
		return errors.Wrap(err, "error during GetRecentFetchChecks")
	}
	burstChecks, err := h.dg.GetRecentBurstChecks(ctx.UserContext(), node.ID, req.Limit)
	if err != nil {
		return errors.Wrap(err, "error during GetRecentBurstChecks")
	}

	result := getNodeChecksResult{
		NodeID: node.ID,
		Status: node.Status.String(),
		NodeChecks: lo.Map(nodeChecks, func(c entity.NodeCheck, _ int) nodeCheckResult {
			return nodeCheckResult{
				Timestamp:     c.Timestamp,
				ServerVersion: c.ServerVersion,
				HeadBlockTime: c.HeadBlockTime,
				CORS:          c.CORS,
				Status:        c.Status,
			}
		}),
		FetchChecks: lo.Map(fetchChecks, func(c entity.FetchCheck, _ int) fetchCheckResult {
			return fetchCheckResult{Timestamp: c.Timestamp, Results: c.Results}
		}),
		BurstChecks: lo.Map(burstChecks, func(c entity.BurstCheck, _ int) burstCheckResult {
			return burstCheckResult{
				Timestamp:   c.Timestamp,
				Status:      c.Status,
				BurstTarget: c.BurstTarget,
				BurstResult: c.BurstResult,
			}
		}),
	}
	return errors.WithStack(ctx.JSON(getNodeChecksResponse{
		Result: &result,
	}))
}
