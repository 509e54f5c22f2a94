package httphandler

import (
	"strings"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type getProducerVotersRequest struct {
	Owner string `params:"owner"`
	Chain string `query:"chain"`

	network common.Network
}

func (r *getProducerVotersRequest) Validate() error {
	var errList []error
	network, err := parseChain(r.Chain)
	if err != nil {
		errList = append(errList, err)
	}
	r.network = network
	r.Owner = strings.TrimSpace(r.Owner)
	if r.Owner == "" {
		errList = append(errList, errors.New("owner is required"))
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type producerVotersResult struct {
	Owner       string               `json:"owner"`
	Voters      []entity.VoterWeight `json:"voters"`
	TotalWeight decimal.Decimal      `json:"totalWeight"`
}

type getProducerVotersResponse = HttpResponse[producerVotersResult]

func (h *HttpHandler) GetProducerVoters(ctx *fiber.Ctx) error {
	var req getProducerVotersRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	votes, err := h.dg.GetProducerVotes(ctx.UserContext(), req.network, req.Owner)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return errs.NewPublicError("producer votes not found")
		}
		return errors.Wrap(err, "error during GetProducerVotes")
	}

	return errors.WithStack(ctx.JSON(getProducerVotersResponse{
		Result: &producerVotersResult{
			Owner:       votes.Owner,
			Voters:      votes.Voters,
			TotalWeight: votes.TotalWeight(),
		},
	}))
}
