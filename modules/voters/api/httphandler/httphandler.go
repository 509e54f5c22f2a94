package httphandler

import (
	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/modules/voters/datagateway"
	"github.com/cockroachdb/errors"
)

type HttpHandler struct {
	dg datagateway.VotersReaderDataGateway
}

func New(dg datagateway.VotersReaderDataGateway) *HttpHandler {
	return &HttpHandler{
		dg: dg,
	}
}

type HttpResponse[T any] common.HttpResponse[T]

func parseChain(chain string) (common.Network, error) {
	network, ok := common.ParseNetwork(chain)
	if !ok {
		return "", errors.Errorf("chain %q is not supported", chain)
	}
	return network, nil
}
