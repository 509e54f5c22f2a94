package postgres

import (
	"testing"
	"time"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/nodecheck/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapNodeModelToType(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		node, err := mapNodeModelToType(gen.ProducerNode{
			ID:            7,
			ProducerID:    3,
			Network:       "testnet",
			Role:          "api",
			Url:           "https://fio.example.com",
			Status:        "down",
			ServerVersion: "v3.5.0",
			Hyperion:      true,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.Node{
			ID:            7,
			ProducerID:    3,
			Network:       common.NetworkTestnet,
			Role:          entity.NodeRoleAPI,
			URL:           "https://fio.example.com",
			Status:        entity.NodeStatusDown,
			ServerVersion: "v3.5.0",
			Hyperion:      true,
		}, node)
	})
	t.Run("unknown status", func(t *testing.T) {
		_, err := mapNodeModelToType(gen.ProducerNode{Role: "api", Status: "reported"})
		assert.Error(t, err)
	})
	t.Run("unknown role", func(t *testing.T) {
		_, err := mapNodeModelToType(gen.ProducerNode{Role: "full", Status: "active"})
		assert.Error(t, err)
	})
}

func TestMapNodeCheck(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	params := mapNodeCheckTypeToParams(entity.NodeCheck{NodeID: 1, Timestamp: ts, Status: 0})
	assert.False(t, params.HeadBlockTime.Valid)
	assert.True(t, params.TimeStamp.Time.Equal(ts))

	check := mapNodeCheckModelToType(gen.ApiNodeCheck{
		ID:            9,
		NodeID:        1,
		TimeStamp:     pgtype.Timestamptz{Time: ts, Valid: true},
		ServerVersion: "v3.5.0",
		HeadBlockTime: pgtype.Timestamptz{Time: ts.Add(-time.Second), Valid: true},
		Cors:          true,
		Status:        200,
	})
	require.NotNil(t, check.HeadBlockTime)
	assert.True(t, check.HeadBlockTime.Equal(ts.Add(-time.Second)))
	assert.Equal(t, int32(200), check.Status)
	assert.True(t, check.CORS)
}
