package datagateway

import (
	"context"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/internal/entity"
)

type NodeCheckDataGateway interface {
	NodeReaderDataGateway
	NodeWriterDataGateway
}

type NodeReaderDataGateway interface {
	// GetNodes returns the nodes of the network matching any of the roles and statuses, ordered by id.
	GetNodes(ctx context.Context, arg GetNodesParams) ([]entity.Node, error)
	// GetNodeByID returns errs.NotFound when the node does not exist.
	GetNodeByID(ctx context.Context, id int64) (entity.Node, error)
	// GetRecentNodeChecks returns up to limit node checks of the node, most recent first.
	GetRecentNodeChecks(ctx context.Context, nodeID int64, limit int32) ([]entity.NodeCheck, error)
	GetRecentFetchChecks(ctx context.Context, nodeID int64, limit int32) ([]entity.FetchCheck, error)
	GetRecentBurstChecks(ctx context.Context, nodeID int64, limit int32) ([]entity.BurstCheck, error)
}

type NodeWriterDataGateway interface {
	UpdateNodeStatus(ctx context.Context, arg UpdateNodeStatusParams) error
	UpdateNodeFeatures(ctx context.Context, arg UpdateNodeFeaturesParams) error
	CreateNodeCheck(ctx context.Context, check entity.NodeCheck) error
	CreateFetchCheck(ctx context.Context, check entity.FetchCheck) error
	CreateBurstCheck(ctx context.Context, check entity.BurstCheck) error
}

type GetNodesParams struct {
	Network  common.Network
	Roles    []entity.NodeRole
	Statuses []entity.NodeStatus
}

type UpdateNodeStatusParams struct {
	NodeID int64
	Status entity.NodeStatus

	// ServerVersion is left unchanged when nil.
	ServerVersion *string
}

type UpdateNodeFeaturesParams struct {
	NodeID    int64
	HistoryV1 bool
	Hyperion  bool
}
