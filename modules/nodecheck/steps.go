package nodecheck

import (
	"context"

	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/nodecheck/datagateway"
	"github.com/bpmon-network/bpmon/modules/nodecheck/probe"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/bpmon-network/bpmon/pkg/metrics"
	"github.com/samber/lo"
)

type stepResult int

const (
	stepNext stepResult = iota
	stepHalt
)

// step is one stage of the per node check sequence.
type step func(ctx context.Context, state *nodeState) stepResult

type nodeState struct {
	node    entity.Node
	chainID string
	info    probe.InfoResult
	stats   *cycleStats
}

func (m *Monitor) steps() []step {
	return []step{
		m.livenessStep,
		m.featureStep,
		m.fetchStep,
		m.burstStep,
	}
}

func (m *Monitor) livenessStep(ctx context.Context, state *nodeState) stepResult {
	node := state.node
	info := m.prober.Info(ctx, node.URL, state.chainID)
	state.info = info
	m.countOutcome(node, "info", info.Outcome.String())

	var cors bool
	if info.Responded {
		var err error
		cors, err = m.prober.CORS(ctx, node.URL, info)
		m.countOutcome(node, "cors", probe.Reason(err))
		if err != nil {
			logger.DebugContext(ctx, "CORS is not enabled", slogx.String("reason", probe.Reason(err)), slogx.Error(err))
		}
	}

	check := entity.NodeCheck{
		NodeID:    node.ID,
		Timestamp: m.now().UTC(),
		CORS:      cors,
		Status:    info.ResultCode(),
	}

	switch info.Outcome {
	case probe.InfoNoResponse:
		logger.WarnContext(ctx, "Node is not responding",
			slogx.String("reason", probe.Reason(info.Err)),
			slogx.Int("http_status", info.HTTPStatus),
			slogx.Error(info.Err),
		)
		m.createNodeCheck(ctx, state, check)
		m.demoteIfSilent(ctx, state)
		return stepHalt

	case probe.InfoStale:
		logger.WarnContext(ctx, "Node head block is stale, marking as down",
			slogx.Time("head_block_time", *info.HeadBlockTime),
			slogx.String("server_version", info.ServerVersion),
		)
		m.updateStatus(ctx, state, entity.NodeStatusDown, nil)
		check.ServerVersion = info.ServerVersion
		check.HeadBlockTime = info.HeadBlockTime
		m.createNodeCheck(ctx, state, check)
		return stepHalt

	case probe.InfoChainMismatch:
		logger.WarnContext(ctx, "Node serves another chain, marking as inactive", slogx.String("chain_id", info.ChainID))
		m.updateStatus(ctx, state, entity.NodeStatusInactive, nil)
		m.createNodeCheck(ctx, state, check)
		return stepHalt
	}

	logger.DebugContext(ctx, "Node is healthy", slogx.String("server_version", info.ServerVersion))
	m.updateStatus(ctx, state, entity.NodeStatusActive, lo.ToPtr(info.ServerVersion))
	check.ServerVersion = info.ServerVersion
	check.HeadBlockTime = info.HeadBlockTime
	m.createNodeCheck(ctx, state, check)
	return stepNext
}

func (m *Monitor) featureStep(ctx context.Context, state *nodeState) stepResult {
	node := state.node

	historyV1, err := m.prober.History(ctx, node.URL)
	m.countOutcome(node, "history", probe.Reason(err))
	hyperion, err := m.prober.Indexer(ctx, node.URL)
	m.countOutcome(node, "indexer", probe.Reason(err))

	if err := m.dg.UpdateNodeFeatures(ctx, datagateway.UpdateNodeFeaturesParams{
		NodeID:    node.ID,
		HistoryV1: historyV1,
		Hyperion:  hyperion,
	}); err != nil {
		m.writeFailed(ctx, state, "update_node_features", err)
	}
	logger.DebugContext(ctx, "Feature checks completed", slogx.Bool("history_v1", historyV1), slogx.Bool("hyperion", hyperion))
	return stepNext
}

func (m *Monitor) fetchStep(ctx context.Context, state *nodeState) stepResult {
	node := state.node

	rows, err := m.prober.Fetch(ctx, node.URL)
	m.countOutcome(node, "fetch", probe.Reason(err))
	if err != nil {
		logger.DebugContext(ctx, "Fetch check failed", slogx.Error(err))
	}

	if err := m.dg.CreateFetchCheck(ctx, entity.FetchCheck{
		NodeID:    node.ID,
		Timestamp: m.now().UTC(),
		Results:   rows,
	}); err != nil {
		m.writeFailed(ctx, state, "create_fetch_check", err)
	}
	return stepNext
}

func (m *Monitor) burstStep(ctx context.Context, state *nodeState) stepResult {
	node := state.node

	result, err := m.prober.Burst(ctx, node.URL)
	m.countOutcome(node, "burst", probe.Reason(err))
	logger.DebugContext(ctx, "Burst check completed",
		slogx.Int32("successes", result.Successes),
		slogx.Int32("target", result.Target),
	)

	if err := m.dg.CreateBurstCheck(ctx, entity.BurstCheck{
		NodeID:      node.ID,
		Timestamp:   m.now().UTC(),
		Status:      result.Passed(),
		BurstTarget: result.Target,
		BurstResult: result.Successes,
	}); err != nil {
		m.writeFailed(ctx, state, "create_burst_check", err)
	}
	return stepHalt
}

func (m *Monitor) demoteIfSilent(ctx context.Context, state *nodeState) {
	recent, err := m.dg.GetRecentNodeChecks(ctx, state.node.ID, demotionWindow)
	if err != nil {
		logger.ErrorContext(ctx, "Can't read recent node checks, status left unchanged", err)
		return
	}
	if ShouldDemote(recent) {
		m.updateStatus(ctx, state, entity.NodeStatusDown, nil)
	}
}

func (m *Monitor) updateStatus(ctx context.Context, state *nodeState, status entity.NodeStatus, serverVersion *string) {
	if err := m.dg.UpdateNodeStatus(ctx, datagateway.UpdateNodeStatusParams{
		NodeID:        state.node.ID,
		Status:        status,
		ServerVersion: serverVersion,
	}); err != nil {
		m.writeFailed(ctx, state, "update_node_status", err)
		return
	}
	metrics.StatusTransitions.WithLabelValues(state.node.Network.String(), status.String()).Inc()
	switch status {
	case entity.NodeStatusActive:
		state.stats.healthy++
	case entity.NodeStatusDown:
		state.stats.down++
	case entity.NodeStatusInactive:
		state.stats.inactive++
	}
	if state.node.Status != status {
		logger.InfoContext(ctx, "Node status changed",
			slogx.Stringer("from", state.node.Status),
			slogx.Stringer("to", status),
		)
	}
}

func (m *Monitor) createNodeCheck(ctx context.Context, state *nodeState, check entity.NodeCheck) {
	if err := m.dg.CreateNodeCheck(ctx, check); err != nil {
		m.writeFailed(ctx, state, "create_node_check", err)
	}
}

func (m *Monitor) writeFailed(ctx context.Context, state *nodeState, operation string, err error) {
	state.stats.failedWrite++
	metrics.StoreFailures.WithLabelValues(JobName, operation).Inc()
	logger.ErrorContext(ctx, "Failed to write node check result", err, slogx.String("operation", operation))
}

func (m *Monitor) countOutcome(node entity.Node, kind string, outcome string) {
	metrics.ProbeOutcomes.WithLabelValues(node.Network.String(), kind, outcome).Inc()
}
