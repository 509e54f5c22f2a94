package httphandler

import (
	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/modules/nodecheck/datagateway"
)

type HttpHandler struct {
	dg datagateway.NodeReaderDataGateway
}

func New(dg datagateway.NodeReaderDataGateway) *HttpHandler {
	return &HttpHandler{
		dg: dg,
	}
}

type HttpResponse[T any] common.HttpResponse[T]
