package datagateway

import (
	"context"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/internal/entity"
)

type VotersDataGateway interface {
	VotersReaderDataGateway
	VotersWriterDataGateway

	// BeginVotersTx returns a new VotersDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginVotersTx(ctx context.Context) (VotersDataGatewayWithTx, error)
}

type VotersDataGatewayWithTx interface {
	VotersDataGateway
	Tx
}

type VotersReaderDataGateway interface {
	// GetNodeCandidates returns the active api nodes of the network with at least one fully passed
	// burst check and at least one fetch check, unordered.
	GetNodeCandidates(ctx context.Context, network common.Network) ([]entity.NodeCandidate, error)
	// GetProducersByOwners returns the known producers among the owners.
	GetProducersByOwners(ctx context.Context, network common.Network, owners []string) ([]entity.Producer, error)
	GetProxies(ctx context.Context, network common.Network) ([]entity.Proxy, error)
	// GetProducerVotes returns errs.NotFound when the producer has no aggregate.
	GetProducerVotes(ctx context.Context, network common.Network, owner string) (entity.ProducerVotes, error)
}

type VotersWriterDataGateway interface {
	DeleteProducerVotes(ctx context.Context, network common.Network) error
	DeleteProxies(ctx context.Context, network common.Network) error
	CreateProducerVotes(ctx context.Context, votes entity.ProducerVotes) error
	CreateProxy(ctx context.Context, proxy entity.Proxy) error
}
