package postgres

import (
	"encoding/json"
	"testing"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/voters/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericFromDecimal(t *testing.T) {
	testCases := []struct {
		input     string
		expectInt string
		expectExp int32
	}{
		{input: "130", expectInt: "130", expectExp: 0},
		{input: "42.5", expectInt: "425", expectExp: -1},
		{input: "0.000000001", expectInt: "1", expectExp: -9},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			n, err := numericFromDecimal(decimal.RequireFromString(tc.input))
			require.NoError(t, err)
			assert.True(t, n.Valid)
			assert.Equal(t, tc.expectInt, n.Int.String())
			assert.Equal(t, tc.expectExp, n.Exp)
		})
	}
}

func TestMapProducerVotes(t *testing.T) {
	votes := entity.ProducerVotes{
		ProducerID: 7,
		Owner:      "bpa",
		Network:    common.NetworkMainnet,
		Voters: []entity.VoterWeight{
			{Owner: "alice", Weight: decimal.NewFromInt(100)},
			{Owner: "proxy1", Weight: decimal.RequireFromString("30.5")},
		},
	}

	params, err := mapProducerVotesTypeToParams(votes)
	require.NoError(t, err)
	assert.EqualValues(t, 7, params.ProducerID)
	assert.Equal(t, "mainnet", params.Network)
	var stored []entity.VoterWeight
	require.NoError(t, json.Unmarshal(params.Voters, &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, "proxy1", stored[1].Owner)
	assert.True(t, decimal.RequireFromString("30.5").Equal(stored[1].Weight))
	assert.Equal(t, "1305", params.TotalWeight.Int.String())
	assert.EqualValues(t, -1, params.TotalWeight.Exp)

	got, err := mapProducerVotesModelToType(gen.GetProducerVotesByOwnerRow{
		ProducerID: 7,
		Owner:      "bpa",
		Network:    "mainnet",
		Voters:     params.Voters,
	})
	require.NoError(t, err)
	assert.Equal(t, votes.Owner, got.Owner)
	require.Len(t, got.Voters, 2)
	assert.True(t, votes.TotalWeight().Equal(got.TotalWeight()))
}

func TestMapProducerVotesEmptyVoters(t *testing.T) {
	params, err := mapProducerVotesTypeToParams(entity.ProducerVotes{ProducerID: 1, Network: common.NetworkTestnet})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(params.Voters))
}

func TestMapProxy(t *testing.T) {
	t.Run("with handle", func(t *testing.T) {
		proxy := entity.Proxy{
			Owner:      "proxy1",
			FIOAddress: lo.ToPtr("proxy@fiomembers"),
			Network:    common.NetworkTestnet,
			Vote:       []string{"bpa", "bpb"},
			Delegators: []entity.VoterWeight{{Owner: "alice", Weight: decimal.NewFromInt(5)}},
		}
		params, err := mapProxyTypeToParams(proxy)
		require.NoError(t, err)
		assert.Equal(t, pgtype.Text{String: "proxy@fiomembers", Valid: true}, params.FioAddress)

		got, err := mapProxyModelToType(gen.Proxy{
			Owner:      params.Owner,
			Network:    params.Network,
			FioAddress: params.FioAddress,
			Vote:       params.Vote,
			Delegators: params.Delegators,
		})
		require.NoError(t, err)
		assert.Equal(t, proxy.FIOAddress, got.FIOAddress)
		assert.Equal(t, proxy.Vote, got.Vote)
		assert.Equal(t, common.NetworkTestnet, got.Network)
	})
	t.Run("without handle or delegators", func(t *testing.T) {
		params, err := mapProxyTypeToParams(entity.Proxy{Owner: "proxy2", Network: common.NetworkMainnet})
		require.NoError(t, err)
		assert.False(t, params.FioAddress.Valid)
		assert.Equal(t, "[]", string(params.Vote))
		assert.Equal(t, "[]", string(params.Delegators))

		got, err := mapProxyModelToType(gen.Proxy{Owner: "proxy2", Network: "mainnet", Vote: params.Vote, Delegators: params.Delegators})
		require.NoError(t, err)
		assert.Nil(t, got.FIOAddress)
		assert.NotNil(t, got.Delegators)
		assert.Empty(t, got.Delegators)
	})
	t.Run("corrupt delegators", func(t *testing.T) {
		_, err := mapProxyModelToType(gen.Proxy{Owner: "proxy3", Vote: json.RawMessage(`[]`), Delegators: []byte(`{`)})
		assert.Error(t, err)
	})
}
