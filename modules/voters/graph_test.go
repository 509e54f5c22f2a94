package voters

import (
	"testing"

	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/pkg/decimals"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weight(s string) entity.VoterWeight {
	return entity.VoterWeight{Weight: decimals.MustFromString(s)}
}

func TestBuildDelegationGraph(t *testing.T) {
	voters := []entity.Voter{
		{ID: 0, Owner: "alice", Producers: []string{"bpb", "bpa"}, LastVoteWeight: "123000000000.0000"},
		{ID: 1, Owner: "bob", Proxy: "proxy1", LastVoteWeight: "2500000000.00000000000000000"},
		{ID: 2, Owner: "carol", Proxy: "proxy1", Producers: []string{"bpa"}, LastVoteWeight: "1000000000"},
		{ID: 3, Owner: "proxy1", Producers: []string{"bpa"}, IsProxy: true, FIOAddress: "proxy1@fiomembers", LastVoteWeight: "7000000000"},
		{ID: 4, Owner: "proxy0", Producers: []string{"bpc"}, IsProxy: true, LastVoteWeight: "0.00000000000000000"},
		{ID: 5, Owner: "dave", LastVoteWeight: "5000000000"},
	}

	graph := BuildDelegationGraph(voters)

	t.Run("producers sorted by owner with direct voters only", func(t *testing.T) {
		require.Len(t, graph.Producers, 3)
		assert.Equal(t, []string{"bpa", "bpb", "bpc"}, lo.Map(graph.Producers, func(p entity.ProducerVotes, _ int) string { return p.Owner }))

		bpa := graph.Producers[0]
		assert.Equal(t, []string{"alice", "proxy1"}, lo.Map(bpa.Voters, func(v entity.VoterWeight, _ int) string { return v.Owner }))
		assert.Equal(t, "123", bpa.Voters[0].Weight.String())
		assert.Equal(t, "7", bpa.Voters[1].Weight.String())
	})

	t.Run("proxies keep their delegators", func(t *testing.T) {
		require.Len(t, graph.Proxies, 2)
		assert.Equal(t, "proxy0", graph.Proxies[0].Owner)
		assert.Empty(t, graph.Proxies[0].Delegators)
		assert.NotNil(t, graph.Proxies[0].Delegators)
		assert.Nil(t, graph.Proxies[0].FIOAddress)

		proxy1 := graph.Proxies[1]
		assert.Equal(t, []string{"bpa"}, proxy1.Vote)
		assert.Equal(t, []string{"bob", "carol"}, lo.Map(proxy1.Delegators, func(v entity.VoterWeight, _ int) string { return v.Owner }))
		assert.Equal(t, "2.5", proxy1.Delegators[0].Weight.String())
		require.NotNil(t, proxy1.FIOAddress)
		assert.Equal(t, "proxy1@fiomembers", *proxy1.FIOAddress)
	})

	t.Run("a proxied voter never counts as a direct voter", func(t *testing.T) {
		for _, producer := range graph.Producers {
			for _, voter := range producer.Voters {
				assert.NotEqual(t, "bob", voter.Owner)
				assert.NotEqual(t, "carol", voter.Owner)
			}
		}
	})

	assert.Empty(t, graph.MalformedWeights)
}

func TestBuildDelegationGraphIdempotent(t *testing.T) {
	voters := []entity.Voter{
		{Owner: "zed", Producers: []string{"bpz", "bpa"}, LastVoteWeight: "1000000000"},
		{Owner: "amy", Producers: []string{"bpa"}, LastVoteWeight: "2000000000"},
		{Owner: "pxy", IsProxy: true, Producers: []string{"bpa"}, LastVoteWeight: "0"},
		{Owner: "ben", Proxy: "pxy", LastVoteWeight: "3000000000"},
	}

	first := BuildDelegationGraph(voters)
	second := BuildDelegationGraph(voters)
	assert.Equal(t, first, second)
}

func TestBuildDelegationGraphMalformedWeight(t *testing.T) {
	voters := []entity.Voter{
		{Owner: "alice", Producers: []string{"bpa"}, LastVoteWeight: "not-a-number"},
		{Owner: "bob", Producers: []string{"bpa"}, LastVoteWeight: ""},
		{Owner: "carol", Producers: []string{"bpa"}, LastVoteWeight: "1000000000"},
	}

	graph := BuildDelegationGraph(voters)
	assert.Equal(t, []string{"alice", "bob"}, graph.MalformedWeights)
	require.Len(t, graph.Producers, 1)
	assert.True(t, graph.Producers[0].Voters[0].Weight.IsZero())
	assert.True(t, graph.Producers[0].Voters[1].Weight.IsZero())
	assert.Equal(t, "1", graph.Producers[0].TotalWeight().String())
}

func TestBuildDelegationGraphEmpty(t *testing.T) {
	graph := BuildDelegationGraph(nil)
	assert.Empty(t, graph.Producers)
	assert.Empty(t, graph.Proxies)
	assert.Empty(t, graph.MalformedWeights)
}

func TestSumWeights(t *testing.T) {
	list := []entity.VoterWeight{weight("1.5"), weight("2.25"), weight("0")}
	assert.Equal(t, "3.75", entity.SumWeights(list).String())
	assert.True(t, entity.SumWeights(nil).IsZero())
}

func TestRankCandidates(t *testing.T) {
	candidates := []entity.NodeCandidate{
		{NodeID: 4, SuccessfulFetches: 10, LatestFetchResults: 100},
		{NodeID: 3, SuccessfulFetches: 12, LatestFetchResults: 50},
		{NodeID: 2, SuccessfulFetches: 10, LatestFetchResults: 100},
		{NodeID: 1, SuccessfulFetches: 10, LatestFetchResults: 80},
	}

	ranked := RankCandidates(candidates)
	assert.Equal(t, []int64{3, 2, 4, 1}, lo.Map(ranked, func(c entity.NodeCandidate, _ int) int64 { return c.NodeID }))
	// input is left untouched
	assert.Equal(t, int64(4), candidates[0].NodeID)
	assert.Empty(t, RankCandidates(nil))
}
