package entity

import (
	"github.com/bpmon-network/bpmon/common"
	"github.com/shopspring/decimal"
)

// Voter is one row of the on-chain voters table.
type Voter struct {
	ID             uint64
	Owner          string
	Proxy          string
	Producers      []string
	LastVoteWeight string
	IsProxy        bool
	FIOAddress     string
}

type VoterWeight struct {
	Owner  string          `json:"owner"`
	Weight decimal.Decimal `json:"weight"`
}

type ProducerVotes struct {
	ProducerID int64
	Owner      string
	Network    common.Network
	Voters     []VoterWeight
}

type Proxy struct {
	Owner      string
	FIOAddress *string
	Network    common.Network
	Vote       []string
	Delegators []VoterWeight
}

// SumWeights returns the total weight of a voter list.
func SumWeights(list []VoterWeight) decimal.Decimal {
	total := decimal.Zero
	for _, voter := range list {
		total = total.Add(voter.Weight)
	}
	return total
}

func (p ProducerVotes) TotalWeight() decimal.Decimal {
	return SumWeights(p.Voters)
}

func (p Proxy) TotalWeight() decimal.Decimal {
	return SumWeights(p.Delegators)
}
