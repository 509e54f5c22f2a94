package postgres

import (
	"time"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/nodecheck/repository/postgres/gen"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgtype"
)

func mapNodeModelToType(src gen.ProducerNode) (entity.Node, error) {
	role, err := entity.ParseNodeRole(src.Role)
	if err != nil {
		return entity.Node{}, errors.Wrapf(err, "node %d", src.ID)
	}
	status, err := entity.ParseNodeStatus(src.Status)
	if err != nil {
		return entity.Node{}, errors.Wrapf(err, "node %d", src.ID)
	}
	return entity.Node{
		ID:            src.ID,
		ProducerID:    src.ProducerID,
		Network:       common.Network(src.Network),
		Role:          role,
		URL:           src.Url,
		Status:        status,
		ServerVersion: src.ServerVersion,
		HistoryV1:     src.HistoryV1,
		Hyperion:      src.Hyperion,
	}, nil
}

func mapNodeCheckModelToType(src gen.ApiNodeCheck) entity.NodeCheck {
	var headBlockTime *time.Time
	if src.HeadBlockTime.Valid {
		t := src.HeadBlockTime.Time.UTC()
		headBlockTime = &t
	}
	return entity.NodeCheck{
		ID:            src.ID,
		NodeID:        src.NodeID,
		Timestamp:     src.TimeStamp.Time.UTC(),
		ServerVersion: src.ServerVersion,
		HeadBlockTime: headBlockTime,
		CORS:          src.Cors,
		Status:        src.Status,
	}
}

func mapNodeCheckTypeToParams(src entity.NodeCheck) gen.CreateNodeCheckParams {
	var headBlockTime pgtype.Timestamptz
	if src.HeadBlockTime != nil {
		headBlockTime = pgtype.Timestamptz{Time: *src.HeadBlockTime, Valid: true}
	}
	return gen.CreateNodeCheckParams{
		NodeID:        src.NodeID,
		TimeStamp:     timestamptz(src.Timestamp),
		ServerVersion: src.ServerVersion,
		HeadBlockTime: headBlockTime,
		Cors:          src.CORS,
		Status:        src.Status,
	}
}

func mapFetchCheckModelToType(src gen.ApiFetchCheck) entity.FetchCheck {
	return entity.FetchCheck{
		ID:        src.ID,
		NodeID:    src.NodeID,
		Timestamp: src.TimeStamp.Time.UTC(),
		Results:   src.Results,
	}
}

func mapBurstCheckModelToType(src gen.ApiBurstCheck) entity.BurstCheck {
	return entity.BurstCheck{
		ID:          src.ID,
		NodeID:      src.NodeID,
		Timestamp:   src.TimeStamp.Time.UTC(),
		Status:      src.Status,
		BurstTarget: src.BurstTarget,
		BurstResult: src.BurstResult,
	}
}

// timestamptz falls back to the database default when t is zero.
func timestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		t = time.Now()
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
