package postgres

import (
	"context"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/voters/datagateway"
	"github.com/bpmon-network/bpmon/modules/voters/repository/postgres/gen"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

var _ datagateway.VotersDataGateway = (*Repository)(nil)

func (r *Repository) GetNodeCandidates(ctx context.Context, network common.Network) ([]entity.NodeCandidate, error) {
	rows, err := r.queries.GetNodeCandidates(ctx, network.String())
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(rows, func(row gen.GetNodeCandidatesRow, _ int) entity.NodeCandidate {
		return entity.NodeCandidate{
			NodeID:             row.ID,
			URL:                row.Url,
			SuccessfulFetches:  row.SuccessfulFetches,
			LatestFetchResults: row.LatestFetchResults,
		}
	}), nil
}

func (r *Repository) GetProducersByOwners(ctx context.Context, network common.Network, owners []string) ([]entity.Producer, error) {
	if len(owners) == 0 {
		return []entity.Producer{}, nil
	}
	models, err := r.queries.GetProducersByOwners(ctx, gen.GetProducersByOwnersParams{
		Network: network.String(),
		Owners:  owners,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(model gen.Producer, _ int) entity.Producer {
		return mapProducerModelToType(model)
	}), nil
}

func (r *Repository) GetProxies(ctx context.Context, network common.Network) ([]entity.Proxy, error) {
	models, err := r.queries.GetProxiesByNetwork(ctx, network.String())
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	proxies := make([]entity.Proxy, 0, len(models))
	for _, model := range models {
		proxy, err := mapProxyModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse proxy model")
		}
		proxies = append(proxies, proxy)
	}
	return proxies, nil
}

func (r *Repository) GetProducerVotes(ctx context.Context, network common.Network, owner string) (entity.ProducerVotes, error) {
	model, err := r.queries.GetProducerVotesByOwner(ctx, gen.GetProducerVotesByOwnerParams{
		Network: network.String(),
		Owner:   owner,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ProducerVotes{}, errors.WithStack(errs.NotFound)
		}
		return entity.ProducerVotes{}, errors.Wrap(err, "error during query")
	}
	votes, err := mapProducerVotesModelToType(model)
	if err != nil {
		return entity.ProducerVotes{}, errors.Wrap(err, "failed to parse producer votes model")
	}
	return votes, nil
}

func (r *Repository) DeleteProducerVotes(ctx context.Context, network common.Network) error {
	if err := r.queries.DeleteProducerVotesByNetwork(ctx, network.String()); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteProxies(ctx context.Context, network common.Network) error {
	if err := r.queries.DeleteProxiesByNetwork(ctx, network.String()); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateProducerVotes(ctx context.Context, votes entity.ProducerVotes) error {
	params, err := mapProducerVotesTypeToParams(votes)
	if err != nil {
		return errors.Wrap(err, "failed to map producer votes to params")
	}
	if err := r.queries.CreateProducerVotes(ctx, params); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) CreateProxy(ctx context.Context, proxy entity.Proxy) error {
	params, err := mapProxyTypeToParams(proxy)
	if err != nil {
		return errors.Wrap(err, "failed to map proxy to params")
	}
	if err := r.queries.CreateProxy(ctx, params); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
