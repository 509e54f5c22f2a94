package nodecheck

import (
	"context"
	"testing"
	"time"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/nodecheck/datagateway"
	"github.com/bpmon-network/bpmon/modules/nodecheck/datagateway/mocks"
	"github.com/bpmon-network/bpmon/modules/nodecheck/probe"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testChainID = "21dcae42c0182200e93f954a074011f9048a7624c6fe81d3c9541a614a88bd1c"
	testVersion = "v3.5.0"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeProber struct {
	info      func(nodeURL string) probe.InfoResult
	cors      bool
	history   bool
	indexer   bool
	rows      int32
	burst     probe.BurstResult
	reachable map[string]bool

	corsCalls int
	reached   []string
}

func (f *fakeProber) Info(_ context.Context, nodeURL string, _ string) probe.InfoResult {
	return f.info(nodeURL)
}

func (f *fakeProber) CORS(context.Context, string, probe.InfoResult) (bool, error) {
	f.corsCalls++
	return f.cors, nil
}

func (f *fakeProber) History(context.Context, string) (bool, error) {
	return f.history, nil
}

func (f *fakeProber) Indexer(context.Context, string) (bool, error) {
	return f.indexer, nil
}

func (f *fakeProber) Fetch(context.Context, string) (int32, error) {
	return f.rows, nil
}

func (f *fakeProber) Burst(context.Context, string) (probe.BurstResult, error) {
	return f.burst, nil
}

func (f *fakeProber) Reachable(_ context.Context, endpoint string) (bool, error) {
	f.reached = append(f.reached, endpoint)
	if f.reachable[endpoint] {
		return true, nil
	}
	return false, errors.Mark(errors.New("connection refused"), errs.TransportFailure)
}

func healthyInfo(string) probe.InfoResult {
	return probe.InfoResult{
		Outcome:       probe.InfoHealthy,
		HTTPStatus:    200,
		ServerVersion: testVersion,
		HeadBlockTime: lo.ToPtr(testNow.Add(-time.Second)),
		ChainID:       testChainID,
		Responded:     true,
		AllowOrigin:   "*",
	}
}

func newTestMonitor(dg datagateway.NodeCheckDataGateway, prober Prober) *Monitor {
	m := NewMonitor(dg, prober, map[common.Network]string{common.NetworkMainnet: testChainID})
	m.networks = []common.Network{common.NetworkMainnet}
	m.now = func() time.Time { return testNow }
	return m
}

func expectNodes(dg *mocks.NodeCheckDataGateway, apiNodes []entity.Node, lightNodes []entity.Node) {
	dg.EXPECT().GetNodes(mock.Anything, datagateway.GetNodesParams{
		Network:  common.NetworkMainnet,
		Roles:    []entity.NodeRole{entity.NodeRoleAPI},
		Statuses: monitoredStatuses,
	}).Return(apiNodes, nil).Once()
	dg.EXPECT().GetNodes(mock.Anything, datagateway.GetNodesParams{
		Network:  common.NetworkMainnet,
		Roles:    lightRoles,
		Statuses: monitoredStatuses,
	}).Return(lightNodes, nil).Once()
}

func apiNode(id int64, status entity.NodeStatus) entity.Node {
	return entity.Node{
		ID:         id,
		ProducerID: 1,
		Network:    common.NetworkMainnet,
		Role:       entity.NodeRoleAPI,
		URL:        "https://api.example.com",
		Status:     status,
	}
}

func expectSuccessPath(dg *mocks.NodeCheckDataGateway, nodeID int64) {
	dg.EXPECT().UpdateNodeFeatures(mock.Anything, datagateway.UpdateNodeFeaturesParams{
		NodeID:    nodeID,
		HistoryV1: true,
		Hyperion:  false,
	}).Return(nil).Once()
	dg.EXPECT().CreateFetchCheck(mock.Anything, entity.FetchCheck{
		NodeID:    nodeID,
		Timestamp: testNow,
		Results:   100,
	}).Return(nil).Once()
	dg.EXPECT().CreateBurstCheck(mock.Anything, entity.BurstCheck{
		NodeID:      nodeID,
		Timestamp:   testNow,
		Status:      true,
		BurstTarget: 5,
		BurstResult: 5,
	}).Return(nil).Once()
}

func TestMonitorHealthyNode(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewNodeCheckDataGateway(t)
	prober := &fakeProber{
		info:    healthyInfo,
		cors:    true,
		history: true,
		rows:    100,
		burst:   probe.BurstResult{Target: 5, Successes: 5},
	}

	expectNodes(dg, []entity.Node{apiNode(1, entity.NodeStatusDown)}, nil)
	dg.EXPECT().UpdateNodeStatus(mock.Anything, datagateway.UpdateNodeStatusParams{
		NodeID:        1,
		Status:        entity.NodeStatusActive,
		ServerVersion: lo.ToPtr(testVersion),
	}).Return(nil).Once()
	dg.EXPECT().CreateNodeCheck(mock.Anything, entity.NodeCheck{
		NodeID:        1,
		Timestamp:     testNow,
		ServerVersion: testVersion,
		HeadBlockTime: lo.ToPtr(testNow.Add(-time.Second)),
		CORS:          true,
		Status:        200,
	}).Return(nil).Once()
	expectSuccessPath(dg, 1)

	err := newTestMonitor(dg, prober).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, prober.corsCalls)
}

func TestMonitorStaleNode(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewNodeCheckDataGateway(t)
	headBlockTime := testNow.Add(-time.Minute)
	prober := &fakeProber{
		info: func(string) probe.InfoResult {
			return probe.InfoResult{
				Outcome:       probe.InfoStale,
				HTTPStatus:    200,
				ServerVersion: testVersion,
				HeadBlockTime: &headBlockTime,
				ChainID:       testChainID,
				Responded:     true,
			}
		},
	}

	expectNodes(dg, []entity.Node{apiNode(1, entity.NodeStatusActive)}, nil)
	dg.EXPECT().UpdateNodeStatus(mock.Anything, datagateway.UpdateNodeStatusParams{
		NodeID: 1,
		Status: entity.NodeStatusDown,
	}).Return(nil).Once()
	dg.EXPECT().CreateNodeCheck(mock.Anything, entity.NodeCheck{
		NodeID:        1,
		Timestamp:     testNow,
		ServerVersion: testVersion,
		HeadBlockTime: &headBlockTime,
		Status:        entity.CheckStatusStale,
	}).Return(nil).Once()

	// no feature, fetch or burst expectations: the chain halts
	err := newTestMonitor(dg, prober).Run(ctx)
	require.NoError(t, err)
}

func TestMonitorChainMismatch(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewNodeCheckDataGateway(t)
	prober := &fakeProber{
		info: func(string) probe.InfoResult {
			return probe.InfoResult{
				Outcome:       probe.InfoChainMismatch,
				HTTPStatus:    200,
				ServerVersion: testVersion,
				HeadBlockTime: lo.ToPtr(testNow),
				ChainID:       "b20901380af44ef59c5918439a1f9a41d83669020319a80574b804a5f95cbd7e",
				Responded:     true,
			}
		},
	}

	expectNodes(dg, []entity.Node{apiNode(1, entity.NodeStatusActive)}, nil)
	dg.EXPECT().UpdateNodeStatus(mock.Anything, datagateway.UpdateNodeStatusParams{
		NodeID: 1,
		Status: entity.NodeStatusInactive,
	}).Return(nil).Once()
	dg.EXPECT().CreateNodeCheck(mock.Anything, entity.NodeCheck{
		NodeID:    1,
		Timestamp: testNow,
		Status:    entity.CheckStatusChainMismatch,
	}).Return(nil).Once()

	err := newTestMonitor(dg, prober).Run(ctx)
	require.NoError(t, err)
}

func TestMonitorNoResponse(t *testing.T) {
	silent := entity.NodeCheck{NodeID: 1, Status: entity.CheckStatusNoResponse}
	answered := entity.NodeCheck{NodeID: 1, Status: 200, ServerVersion: testVersion}

	testCases := []struct {
		name       string
		recent     []entity.NodeCheck
		expectDown bool
	}{
		{
			name:       "fewer than 3 checks",
			recent:     []entity.NodeCheck{silent, silent},
			expectDown: true,
		},
		{
			name:       "3 silent checks",
			recent:     []entity.NodeCheck{silent, silent, silent},
			expectDown: true,
		},
		{
			name:       "one of the last 3 checks has a version",
			recent:     []entity.NodeCheck{silent, silent, answered},
			expectDown: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			dg := mocks.NewNodeCheckDataGateway(t)
			prober := &fakeProber{
				info: func(string) probe.InfoResult {
					return probe.InfoResult{
						Outcome: probe.InfoNoResponse,
						Err:     errors.Mark(errors.New("connection refused"), errs.TransportFailure),
					}
				},
			}

			expectNodes(dg, []entity.Node{apiNode(1, entity.NodeStatusActive)}, nil)
			dg.EXPECT().CreateNodeCheck(mock.Anything, entity.NodeCheck{
				NodeID:    1,
				Timestamp: testNow,
				Status:    entity.CheckStatusNoResponse,
			}).Return(nil).Once()
			dg.EXPECT().GetRecentNodeChecks(mock.Anything, int64(1), int32(demotionWindow)).Return(tc.recent, nil).Once()
			if tc.expectDown {
				dg.EXPECT().UpdateNodeStatus(mock.Anything, datagateway.UpdateNodeStatusParams{
					NodeID: 1,
					Status: entity.NodeStatusDown,
				}).Return(nil).Once()
			}

			err := newTestMonitor(dg, prober).Run(ctx)
			require.NoError(t, err)
			assert.Zero(t, prober.corsCalls, "CORS must not be evaluated without a 2xx response")
		})
	}
}

func TestMonitorWriteFailureContinues(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewNodeCheckDataGateway(t)
	prober := &fakeProber{
		info:    healthyInfo,
		history: true,
		rows:    100,
		burst:   probe.BurstResult{Target: 5, Successes: 5},
	}

	expectNodes(dg, []entity.Node{apiNode(1, entity.NodeStatusActive)}, nil)
	dg.EXPECT().UpdateNodeStatus(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()
	dg.EXPECT().CreateNodeCheck(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()
	expectSuccessPath(dg, 1)

	err := newTestMonitor(dg, prober).Run(ctx)
	require.NoError(t, err)
}

func TestMonitorRecoversPanic(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewNodeCheckDataGateway(t)
	second := apiNode(2, entity.NodeStatusActive)
	second.URL = "https://api2.example.com"
	prober := &fakeProber{
		info: func(nodeURL string) probe.InfoResult {
			if nodeURL == second.URL {
				return healthyInfo(nodeURL)
			}
			panic("unexpected nil response")
		},
		history: true,
		rows:    100,
		burst:   probe.BurstResult{Target: 5, Successes: 5},
	}

	expectNodes(dg, []entity.Node{apiNode(1, entity.NodeStatusActive), second}, nil)
	dg.EXPECT().UpdateNodeStatus(mock.Anything, mock.MatchedBy(func(arg datagateway.UpdateNodeStatusParams) bool {
		return arg.NodeID == 2 && arg.Status == entity.NodeStatusActive
	})).Return(nil).Once()
	dg.EXPECT().CreateNodeCheck(mock.Anything, mock.MatchedBy(func(check entity.NodeCheck) bool {
		return check.NodeID == 2
	})).Return(nil).Once()
	expectSuccessPath(dg, 2)

	err := newTestMonitor(dg, prober).Run(ctx)
	require.NoError(t, err)
}

func TestMonitorLightNodes(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewNodeCheckDataGateway(t)
	prober := &fakeProber{
		reachable: map[string]bool{"seed.example.com:9876": true},
	}

	expectNodes(dg, nil, []entity.Node{
		{ID: 10, Network: common.NetworkMainnet, Role: entity.NodeRoleSeed, URL: "seed.example.com:9876", Status: entity.NodeStatusActive},
		{ID: 11, Network: common.NetworkMainnet, Role: entity.NodeRoleProducer, URL: "bp.example.com:9876", Status: entity.NodeStatusDown},
	})

	// no writes are expected for seed and producer nodes
	err := newTestMonitor(dg, prober).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"seed.example.com:9876", "bp.example.com:9876"}, prober.reached)
}

func TestMonitorGetNodesError(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewNodeCheckDataGateway(t)
	dg.EXPECT().GetNodes(mock.Anything, mock.Anything).Return(nil, errors.New("database is down")).Once()

	err := newTestMonitor(dg, &fakeProber{}).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is down")
}

func TestShouldDemote(t *testing.T) {
	silent := entity.NodeCheck{}
	answered := entity.NodeCheck{ServerVersion: testVersion}

	testCases := []struct {
		name     string
		recent   []entity.NodeCheck
		expected bool
	}{
		{name: "no checks", recent: nil, expected: true},
		{name: "two silent checks", recent: []entity.NodeCheck{silent, silent}, expected: true},
		{name: "three silent checks", recent: []entity.NodeCheck{silent, silent, silent}, expected: true},
		{name: "newest answered", recent: []entity.NodeCheck{answered, silent, silent}, expected: false},
		{name: "oldest answered", recent: []entity.NodeCheck{silent, silent, answered}, expected: false},
		{name: "answered outside the window", recent: []entity.NodeCheck{silent, silent, silent, answered}, expected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ShouldDemote(tc.recent))
		})
	}
}
