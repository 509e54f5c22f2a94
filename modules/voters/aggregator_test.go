package voters

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/voters/datagateway/mocks"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	url       string
	voters    []entity.Voter
	err       error
	handles   map[string]bool
	handleErr map[string]error

	mu        sync.Mutex
	validated []string
}

func (s *fakeSource) URL() string {
	return s.url
}

func (s *fakeSource) GetVoters(context.Context) ([]entity.Voter, error) {
	return s.voters, s.err
}

func (s *fakeSource) ValidateHandle(_ context.Context, handle string) (bool, error) {
	s.mu.Lock()
	s.validated = append(s.validated, handle)
	s.mu.Unlock()
	if err := s.handleErr[handle]; err != nil {
		return false, err
	}
	return s.handles[handle], nil
}

type fakeArchiver struct {
	network common.Network
	takenAt time.Time
	voters  int
	err     error
}

func (f *fakeArchiver) Archive(_ context.Context, network common.Network, takenAt time.Time, voters []entity.Voter) error {
	f.network = network
	f.takenAt = takenAt
	f.voters = len(voters)
	return f.err
}

type sourceRecorder struct {
	source *fakeSource
	urls   []string
}

func (r *sourceRecorder) factory(nodeURL string) (SnapshotSource, error) {
	r.urls = append(r.urls, nodeURL)
	r.source.url = nodeURL
	return r.source, nil
}

func newTestAggregator(dg *mocks.VotersDataGateway, recorder *sourceRecorder, opts ...AggregatorOption) *Aggregator {
	a := NewAggregator(dg, recorder.factory, opts...)
	a.networks = []common.Network{common.NetworkMainnet}
	a.now = func() time.Time { return testNow }
	return a
}

func testSnapshot() []entity.Voter {
	return []entity.Voter{
		{ID: 0, Owner: "alice", Producers: []string{"bpa", "unknownbp"}, LastVoteWeight: "123000000000.0000"},
		{ID: 1, Owner: "bob", Proxy: "proxy1", LastVoteWeight: "2000000000"},
		{ID: 2, Owner: "proxy1", IsProxy: true, Producers: []string{"bpa"}, FIOAddress: "proxy1@fiomembers", LastVoteWeight: "7000000000"},
		{ID: 3, Owner: "proxy2", IsProxy: true, FIOAddress: "proxy2@expired", LastVoteWeight: "0"},
		{ID: 4, Owner: "proxy3", IsProxy: true, FIOAddress: "proxy3@fiomembers", LastVoteWeight: "0"},
		{ID: 5, Owner: "carol", Producers: []string{"bpa"}, LastVoteWeight: "oops"},
	}
}

func TestAggregatorReplacesAggregates(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewVotersDataGateway(t)
	dgTx := mocks.NewVotersDataGatewayWithTx(t)
	recorder := &sourceRecorder{source: &fakeSource{
		voters:    testSnapshot(),
		handles:   map[string]bool{"proxy1@fiomembers": true},
		handleErr: map[string]error{"proxy3@fiomembers": errors.Mark(errors.New("timeout"), errs.ValidationSkipped)},
	}}
	archiver := &fakeArchiver{}

	dg.EXPECT().GetNodeCandidates(mock.Anything, common.NetworkMainnet).Return([]entity.NodeCandidate{
		{NodeID: 1, URL: "https://slow.example.com", SuccessfulFetches: 3, LatestFetchResults: 100},
		{NodeID: 2, URL: "https://best.example.com", SuccessfulFetches: 9, LatestFetchResults: 10},
	}, nil).Once()
	dg.EXPECT().GetProducersByOwners(mock.Anything, common.NetworkMainnet, []string{"bpa", "unknownbp"}).Return([]entity.Producer{
		{ID: 42, Owner: "bpa", Network: common.NetworkMainnet},
	}, nil).Once()
	dg.EXPECT().BeginVotersTx(mock.Anything).Return(dgTx, nil).Once()

	dgTx.EXPECT().DeleteProducerVotes(mock.Anything, common.NetworkMainnet).Return(nil).Once()
	dgTx.EXPECT().DeleteProxies(mock.Anything, common.NetworkMainnet).Return(nil).Once()
	dgTx.EXPECT().CreateProducerVotes(mock.Anything, mock.MatchedBy(func(votes entity.ProducerVotes) bool {
		owners := lo.Map(votes.Voters, func(v entity.VoterWeight, _ int) string { return v.Owner })
		return votes.ProducerID == 42 &&
			votes.Network == common.NetworkMainnet &&
			assert.ObjectsAreEqual([]string{"alice", "proxy1", "carol"}, owners) &&
			votes.TotalWeight().String() == "130"
	})).Return(nil).Once()

	var proxies []entity.Proxy
	dgTx.EXPECT().CreateProxy(mock.Anything, mock.Anything).Run(func(_ context.Context, proxy entity.Proxy) {
		proxies = append(proxies, proxy)
	}).Return(nil).Times(3)
	dgTx.EXPECT().Commit(mock.Anything).Return(nil).Once()
	dgTx.EXPECT().Rollback(mock.Anything).Return(nil).Once()

	err := newTestAggregator(dg, recorder, WithArchiver(archiver)).Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://best.example.com"}, recorder.urls)
	assert.ElementsMatch(t, []string{"proxy1@fiomembers", "proxy2@expired", "proxy3@fiomembers"}, recorder.source.validated)

	require.Len(t, proxies, 3)
	assert.Equal(t, []string{"proxy1", "proxy2", "proxy3"}, lo.Map(proxies, func(p entity.Proxy, _ int) string { return p.Owner }))
	require.NotNil(t, proxies[0].FIOAddress)
	assert.Equal(t, "proxy1@fiomembers", *proxies[0].FIOAddress)
	assert.Nil(t, proxies[1].FIOAddress, "expired domain")
	assert.Nil(t, proxies[2].FIOAddress, "lookup failure")
	assert.Equal(t, "2", proxies[0].TotalWeight().String())
	for _, proxy := range proxies {
		assert.Equal(t, common.NetworkMainnet, proxy.Network)
	}

	assert.Equal(t, common.NetworkMainnet, archiver.network)
	assert.Equal(t, testNow, archiver.takenAt)
	assert.Equal(t, 6, archiver.voters)
}

func TestAggregatorFallbackURL(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewVotersDataGateway(t)
	dgTx := mocks.NewVotersDataGatewayWithTx(t)
	recorder := &sourceRecorder{source: &fakeSource{voters: []entity.Voter{}}}

	dg.EXPECT().GetNodeCandidates(mock.Anything, common.NetworkMainnet).Return(nil, nil).Once()
	dg.EXPECT().GetProducersByOwners(mock.Anything, common.NetworkMainnet, []string{}).Return([]entity.Producer{}, nil).Once()
	dg.EXPECT().BeginVotersTx(mock.Anything).Return(dgTx, nil).Once()
	dgTx.EXPECT().DeleteProducerVotes(mock.Anything, common.NetworkMainnet).Return(nil).Once()
	dgTx.EXPECT().DeleteProxies(mock.Anything, common.NetworkMainnet).Return(nil).Once()
	dgTx.EXPECT().Commit(mock.Anything).Return(nil).Once()
	dgTx.EXPECT().Rollback(mock.Anything).Return(nil).Once()

	aggregator := newTestAggregator(dg, recorder, WithFallbackURLs(map[common.Network]string{
		common.NetworkMainnet: "https://fio.example.com",
	}))
	require.NoError(t, aggregator.Run(ctx))
	assert.Equal(t, []string{"https://fio.example.com"}, recorder.urls)
}

func TestAggregatorNoNode(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewVotersDataGateway(t)
	recorder := &sourceRecorder{source: &fakeSource{}}

	dg.EXPECT().GetNodeCandidates(mock.Anything, common.NetworkMainnet).Return(nil, nil).Once()

	err := newTestAggregator(dg, recorder).Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.NotFound))
	assert.Empty(t, recorder.urls)
}

func TestAggregatorFetchFailureKeepsAggregates(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewVotersDataGateway(t)
	recorder := &sourceRecorder{source: &fakeSource{err: errors.Mark(errors.New("page 3 timed out"), errs.TransportFailure)}}

	dg.EXPECT().GetNodeCandidates(mock.Anything, common.NetworkMainnet).Return([]entity.NodeCandidate{
		{NodeID: 1, URL: "https://api.example.com", SuccessfulFetches: 1, LatestFetchResults: 100},
	}, nil).Once()

	// no BeginVotersTx expectation: nothing may be written
	err := newTestAggregator(dg, recorder).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 3 timed out")
}

func TestAggregatorWriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewVotersDataGateway(t)
	dgTx := mocks.NewVotersDataGatewayWithTx(t)
	recorder := &sourceRecorder{source: &fakeSource{voters: []entity.Voter{
		{ID: 0, Owner: "alice", Producers: []string{"bpa"}, LastVoteWeight: "1000000000"},
	}}}

	dg.EXPECT().GetNodeCandidates(mock.Anything, common.NetworkMainnet).Return([]entity.NodeCandidate{
		{NodeID: 1, URL: "https://api.example.com", SuccessfulFetches: 1, LatestFetchResults: 100},
	}, nil).Once()
	dg.EXPECT().GetProducersByOwners(mock.Anything, common.NetworkMainnet, []string{"bpa"}).Return([]entity.Producer{
		{ID: 7, Owner: "bpa", Network: common.NetworkMainnet},
	}, nil).Once()
	dg.EXPECT().BeginVotersTx(mock.Anything).Return(dgTx, nil).Once()
	dgTx.EXPECT().DeleteProducerVotes(mock.Anything, common.NetworkMainnet).Return(nil).Once()
	dgTx.EXPECT().DeleteProxies(mock.Anything, common.NetworkMainnet).Return(nil).Once()
	dgTx.EXPECT().CreateProducerVotes(mock.Anything, mock.Anything).Return(errors.New("deadlock detected")).Once()
	dgTx.EXPECT().Rollback(mock.Anything).Return(nil).Once()

	// no Commit expectation: the transaction must not be committed
	err := newTestAggregator(dg, recorder).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}

func TestAggregatorContinuesWithNextNetwork(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewVotersDataGateway(t)
	dgTx := mocks.NewVotersDataGatewayWithTx(t)
	recorder := &sourceRecorder{source: &fakeSource{voters: []entity.Voter{}}}

	dg.EXPECT().GetNodeCandidates(mock.Anything, common.NetworkMainnet).Return(nil, errors.New("connection refused")).Once()
	dg.EXPECT().GetNodeCandidates(mock.Anything, common.NetworkTestnet).Return([]entity.NodeCandidate{
		{NodeID: 9, URL: "https://testnet.example.com", SuccessfulFetches: 1},
	}, nil).Once()
	dg.EXPECT().GetProducersByOwners(mock.Anything, common.NetworkTestnet, []string{}).Return([]entity.Producer{}, nil).Once()
	dg.EXPECT().BeginVotersTx(mock.Anything).Return(dgTx, nil).Once()
	dgTx.EXPECT().DeleteProducerVotes(mock.Anything, common.NetworkTestnet).Return(nil).Once()
	dgTx.EXPECT().DeleteProxies(mock.Anything, common.NetworkTestnet).Return(nil).Once()
	dgTx.EXPECT().Commit(mock.Anything).Return(nil).Once()
	dgTx.EXPECT().Rollback(mock.Anything).Return(nil).Once()

	aggregator := newTestAggregator(dg, recorder)
	aggregator.networks = []common.Network{common.NetworkMainnet, common.NetworkTestnet}

	err := aggregator.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network mainnet")
	assert.Equal(t, []string{"https://testnet.example.com"}, recorder.urls)
}
