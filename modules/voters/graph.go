package voters

import (
	"slices"
	"strings"

	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/pkg/decimals"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DelegationGraph is the voter snapshot partitioned into direct producer votes
// and proxy delegations. Delegation is resolved one level deep only: a proxy
// that itself delegates keeps its delegators in its own bucket.
type DelegationGraph struct {
	// Producers is keyed by the voted producer account, ProducerID is left unresolved.
	Producers []entity.ProducerVotes
	Proxies   []entity.Proxy

	// MalformedWeights lists the owners whose vote weight could not be parsed and counted as zero.
	MalformedWeights []string
}

// BuildDelegationGraph partitions a voter snapshot. A voter with a proxy only
// contributes to that proxy's bucket, a voter without one contributes to every
// producer it votes for. Producers and proxies are sorted by owner, voters keep
// snapshot order.
func BuildDelegationGraph(voters []entity.Voter) DelegationGraph {
	var graph DelegationGraph

	weights := make([]decimal.Decimal, len(voters))
	for i, voter := range voters {
		weight, err := decimals.VoteWeight(voter.LastVoteWeight)
		if err != nil {
			graph.MalformedWeights = append(graph.MalformedWeights, voter.Owner)
			weight = decimal.Zero
		}
		weights[i] = weight
	}

	delegators := make(map[string][]entity.VoterWeight)
	for i, voter := range voters {
		if voter.Proxy == "" {
			continue
		}
		delegators[voter.Proxy] = append(delegators[voter.Proxy], entity.VoterWeight{
			Owner:  voter.Owner,
			Weight: weights[i],
		})
	}

	producerVoters := make(map[string][]entity.VoterWeight)
	for i, voter := range voters {
		if voter.Proxy == "" {
			for _, producer := range voter.Producers {
				producerVoters[producer] = append(producerVoters[producer], entity.VoterWeight{
					Owner:  voter.Owner,
					Weight: weights[i],
				})
			}
		}
		if voter.IsProxy {
			proxy := entity.Proxy{
				Owner:      voter.Owner,
				Vote:       voter.Producers,
				Delegators: delegators[voter.Owner],
			}
			if proxy.Vote == nil {
				proxy.Vote = []string{}
			}
			if proxy.Delegators == nil {
				proxy.Delegators = []entity.VoterWeight{}
			}
			if voter.FIOAddress != "" {
				handle := voter.FIOAddress
				proxy.FIOAddress = &handle
			}
			graph.Proxies = append(graph.Proxies, proxy)
		}
	}

	graph.Producers = lo.MapToSlice(producerVoters, func(owner string, list []entity.VoterWeight) entity.ProducerVotes {
		return entity.ProducerVotes{
			Owner:  owner,
			Voters: list,
		}
	})
	slices.SortFunc(graph.Producers, func(a, b entity.ProducerVotes) int {
		return strings.Compare(a.Owner, b.Owner)
	})
	slices.SortStableFunc(graph.Proxies, func(a, b entity.Proxy) int {
		return strings.Compare(a.Owner, b.Owner)
	})
	return graph
}
