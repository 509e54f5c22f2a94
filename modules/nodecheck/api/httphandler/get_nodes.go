package httphandler

import (
	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/nodecheck/datagateway"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type getNodesRequest struct {
	Chain string `query:"chain"`
	Type  string `query:"type"`

	network common.Network
	role    entity.NodeRole
}

func (r *getNodesRequest) Validate() error {
	var errList []error
	network, ok := common.ParseNetwork(r.Chain)
	if !ok {
		errList = append(errList, errors.Errorf("chain %q is not supported", r.Chain))
	}
	r.network = network

	role := entity.NodeRoleAPI
	if r.Type != "" {
		var err error
		if role, err = entity.ParseNodeRole(r.Type); err != nil {
			errList = append(errList, errors.Errorf("type %q is not valid", r.Type))
		}
	}
	r.role = role
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}

type nodeResult struct {
	ID            int64  `json:"id"`
	ProducerID    int64  `json:"producerId"`
	Chain         string `json:"chain"`
	Type          string `json:"type"`
	URL           string `json:"url"`
	Status        string `json:"status"`
	ServerVersion string `json:"serverVersion"`
	HistoryV1     bool   `json:"historyV1"`
	Hyperion      bool   `json:"hyperion"`
}

type getNodesResponse = HttpResponse[[]nodeResult]

// GetNodes lists the active nodes of a network and role.
func (h *HttpHandler) GetNodes(ctx *fiber.Ctx) error {
	var req getNodesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	nodes, err := h.dg.GetNodes(ctx.UserContext(), datagateway.GetNodesParams{
		Network:  req.network,
		Roles:    []entity.NodeRole{req.role},
		Statuses: []entity.NodeStatus{entity.NodeStatusActive},
	})
	if err != nil {
		return errors.Wrap(err, "error during GetNodes")
	}

	result := lo.Map(nodes, func(node entity.Node, _ int) nodeResult {
		return nodeResult{
			ID:            node.ID,
			ProducerID:    node.ProducerID,
			Chain:         node.Network.String(),
			Type:          node.Role.String(),
			URL:           node.URL,
			Status:        node.Status.String(),
			ServerVersion: node.ServerVersion,
			HistoryV1:     node.HistoryV1,
			Hyperion:      node.Hyperion,
		}
	})
	return errors.WithStack(ctx.JSON(getNodesResponse{
		Result: &result,
	}))
}
