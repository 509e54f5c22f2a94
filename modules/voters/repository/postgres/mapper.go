package postgres

import (
	"encoding/json"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/voters/repository/postgres/gen"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func numericFromDecimal(src decimal.Decimal) (pgtype.Numeric, error) {
	var result pgtype.Numeric
	if err := result.UnmarshalJSON([]byte(src.String())); err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

func mapProducerVotesTypeToParams(src entity.ProducerVotes) (gen.CreateProducerVotesParams, error) {
	voters, err := json.Marshal(nonNil(src.Voters))
	if err != nil {
		return gen.CreateProducerVotesParams{}, errors.Wrap(err, "can't marshal voters")
	}
	totalWeight, err := numericFromDecimal(src.TotalWeight())
	if err != nil {
		return gen.CreateProducerVotesParams{}, errors.Wrap(err, "can't convert total weight")
	}
	return gen.CreateProducerVotesParams{
		ProducerID:  src.ProducerID,
		Network:     src.Network.String(),
		Voters:      voters,
		TotalWeight: totalWeight,
	}, nil
}

func mapProducerVotesModelToType(src gen.GetProducerVotesByOwnerRow) (entity.ProducerVotes, error) {
	var voters []entity.VoterWeight
	if err := json.Unmarshal(src.Voters, &voters); err != nil {
		return entity.ProducerVotes{}, errors.Wrapf(err, "can't unmarshal voters of producer %d", src.ProducerID)
	}
	return entity.ProducerVotes{
		ProducerID: src.ProducerID,
		Owner:      src.Owner,
		Network:    common.Network(src.Network),
		Voters:     nonNil(voters),
	}, nil
}

func mapProxyTypeToParams(src entity.Proxy) (gen.CreateProxyParams, error) {
	vote, err := json.Marshal(nonNil(src.Vote))
	if err != nil {
		return gen.CreateProxyParams{}, errors.Wrap(err, "can't marshal vote")
	}
	delegators, err := json.Marshal(nonNil(src.Delegators))
	if err != nil {
		return gen.CreateProxyParams{}, errors.Wrap(err, "can't marshal delegators")
	}
	totalWeight, err := numericFromDecimal(src.TotalWeight())
	if err != nil {
		return gen.CreateProxyParams{}, errors.Wrap(err, "can't convert total weight")
	}
	var fioAddress pgtype.Text
	if src.FIOAddress != nil {
		fioAddress = pgtype.Text{String: *src.FIOAddress, Valid: true}
	}
	return gen.CreateProxyParams{
		Owner:       src.Owner,
		Network:     src.Network.String(),
		FioAddress:  fioAddress,
		Vote:        vote,
		Delegators:  delegators,
		TotalWeight: totalWeight,
	}, nil
}

func mapProxyModelToType(src gen.Proxy) (entity.Proxy, error) {
	var (
		vote       []string
		delegators []entity.VoterWeight
	)
	if err := json.Unmarshal(src.Vote, &vote); err != nil {
		return entity.Proxy{}, errors.Wrapf(err, "can't unmarshal vote of proxy %s", src.Owner)
	}
	if err := json.Unmarshal(src.Delegators, &delegators); err != nil {
		return entity.Proxy{}, errors.Wrapf(err, "can't unmarshal delegators of proxy %s", src.Owner)
	}
	var fioAddress *string
	if src.FioAddress.Valid {
		fioAddress = &src.FioAddress.String
	}
	return entity.Proxy{
		Owner:      src.Owner,
		FIOAddress: fioAddress,
		Network:    common.Network(src.Network),
		Vote:       nonNil(vote),
		Delegators: nonNil(delegators),
	}, nil
}

func mapProducerModelToType(src gen.Producer) entity.Producer {
	return entity.Producer{
		ID:      src.ID,
		Owner:   src.Owner,
		Network: common.Network(src.Network),
		Status:  src.Status,
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
