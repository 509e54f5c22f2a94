package postgres

import (
	"context"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/nodecheck/datagateway"
	"github.com/bpmon-network/bpmon/modules/nodecheck/repository/postgres/gen"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
)

var _ datagateway.NodeCheckDataGateway = (*Repository)(nil)

func (r *Repository) GetNodes(ctx context.Context, arg datagateway.GetNodesParams) ([]entity.Node, error) {
	models, err := r.queries.GetNodes(ctx, gen.GetNodesParams{
		Network:  arg.Network.String(),
		Roles:    lo.Map(arg.Roles, func(role entity.NodeRole, _ int) string { return role.String() }),
		Statuses: lo.Map(arg.Statuses, func(status entity.NodeStatus, _ int) string { return status.String() }),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	nodes := make([]entity.Node, 0, len(models))
	for _, model := range models {
		node, err := mapNodeModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse node model")
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (r *Repository) GetNodeByID(ctx context.Context, id int64) (entity.Node, error) {
	model, err := r.queries.GetNodeByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Node{}, errors.WithStack(errs.NotFound)
		}
		return entity.Node{}, errors.Wrap(err, "error during query")
	}
	node, err := mapNodeModelToType(model)
	if err != nil {
		return entity.Node{}, errors.Wrap(err, "failed to parse node model")
	}
	return node, nil
}

func (r *Repository) GetRecentNodeChecks(ctx context.Context, nodeID int64, limit int32) ([]entity.NodeCheck, error) {
	models, err := r.queries.GetRecentNodeChecks(ctx, nodeID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.ApiNodeCheck, _ int) entity.NodeCheck {
		return mapNodeCheckModelToType(model)
	}), nil
}

func (r *Repository) GetRecentFetchChecks(ctx context.Context, nodeID int64, limit int32) ([]entity.FetchCheck, error) {
	models, err := r.queries.GetRecentFetchChecks(ctx, nodeID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.ApiFetchCheck, _ int) entity.FetchCheck {
		return mapFetchCheckModelToType(model)
	}), nil
}

func (r *Repository) GetRecentBurstChecks(ctx context.Context, nodeID int64, limit int32) ([]entity.BurstCheck, error) {
	models, err := r.queries.GetRecentBurstChecks(ctx, nodeID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.ApiBurstCheck, _ int) entity.BurstCheck {
		return mapBurstCheckModelToType(model)
	}), nil
}

func (r *Repository) UpdateNodeStatus(ctx context.Context, arg datagateway.UpdateNodeStatusParams) error {
	var version pgtype.Text
	if arg.ServerVersion != nil {
		version = pgtype.Text{String: *arg.ServerVersion, Valid: true}
	}
	if err := r.queries.UpdateNodeStatus(ctx, gen.UpdateNodeStatusParams{
		Status:        arg.Status.String(),
		ServerVersion: version,
		ID:            arg.NodeID,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) UpdateNodeFeatures(ctx context.Context, arg datagateway.UpdateNodeFeaturesParams) error {
	if err := r.queries.UpdateNodeFeatures(ctx, gen.UpdateNodeFeaturesParams{
		ID:        arg.NodeID,
		HistoryV1: arg.HistoryV1,
		Hyperion:  arg.Hyperion,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateNodeCheck(ctx context.Context, check entity.NodeCheck) error {
	if err := r.queries.CreateNodeCheck(ctx, mapNodeCheckTypeToParams(check)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateFetchCheck(ctx context.Context, check entity.FetchCheck) error {
	if err := r.queries.CreateFetchCheck(ctx, gen.CreateFetchCheckParams{
		NodeID:    check.NodeID,
		TimeStamp: timestamptz(check.Timestamp),
		Results:   check.Results,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateBurstCheck(ctx context.Context, check entity.BurstCheck) error {
	if err := r.queries.CreateBurstCheck(ctx, gen.CreateBurstCheckParams{
		NodeID:      check.NodeID,
		TimeStamp:   timestamptz(check.Timestamp),
		Status:      check.Status,
		BurstTarget: check.BurstTarget,
		BurstResult: check.BurstResult,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
