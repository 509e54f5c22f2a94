package httphandler

import (
	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type getProxiesRequest struct {
	Chain string `query:"chain"`

	network common.Network
}

func (r *getProxiesRequest) Validate() error {
	network, err := parseChain(r.Chain)
	if err != nil {
		return errs.WithPublicMessage(err, "validation error")
	}
	r.network = network
	return nil
}

type proxyResult struct {
	Owner       string               `json:"owner"`
	FIOAddress  *string              `json:"fioAddress"`
	Vote        []string             `json:"vote"`
	Delegators  []entity.VoterWeight `json:"delegators"`
	TotalWeight decimal.Decimal      `json:"totalWeight"`
}

type getProxiesResponse = HttpResponse[[]proxyResult]

func (h *HttpHandler) GetProxies(ctx *fiber.Ctx) error {
	var req getProxiesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	proxies, err := h.dg.GetProxies(ctx.UserContext(), req.network)
	if err != nil {
		return errors.Wrap(err, "error during GetProxies")
	}

	result := lo.Map(proxies, func(proxy entity.Proxy, _ int) proxyResult {
		return proxyResult{
			Owner:       proxy.Owner,
			FIOAddress:  proxy.FIOAddress,
			Vote:        proxy.Vote,
			Delegators:  proxy.Delegators,
			TotalWeight: proxy.TotalWeight(),
		}
	})
	return errors.WithStack(ctx.JSON(getProxiesResponse{
		Result: &result,
	}))
}
