package nodecheck

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/core/scheduler"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/nodecheck/datagateway"
	"github.com/bpmon-network/bpmon/modules/nodecheck/probe"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/bpmon-network/bpmon/pkg/metrics"
	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
)

const JobName = "nodecheck"

// demotionWindow is the number of most recent node checks considered when a node stops responding.
const demotionWindow = 3

var (
	monitoredStatuses = []entity.NodeStatus{entity.NodeStatusActive, entity.NodeStatusDown}
	lightRoles        = []entity.NodeRole{entity.NodeRoleSeed, entity.NodeRoleProducer}
)

// Prober is the set of probes the monitor runs against a node.
type Prober interface {
	Info(ctx context.Context, nodeURL string, expectedChainID string) probe.InfoResult
	CORS(ctx context.Context, nodeURL string, info probe.InfoResult) (bool, error)
	History(ctx context.Context, nodeURL string) (bool, error)
	Indexer(ctx context.Context, nodeURL string) (bool, error)
	Fetch(ctx context.Context, nodeURL string) (int32, error)
	Burst(ctx context.Context, nodeURL string) (probe.BurstResult, error)
	Reachable(ctx context.Context, endpoint string) (bool, error)
}

// Make sure to implement the Job interface
var _ scheduler.Job = (*Monitor)(nil)

// Monitor checks the health of every monitored node once per cycle.
type Monitor struct {
	dg       datagateway.NodeCheckDataGateway
	prober   Prober
	networks []common.Network
	chainIDs map[common.Network]string
	now      func() time.Time

	cleanupFuncs []func(context.Context) error
}

func NewMonitor(dg datagateway.NodeCheckDataGateway, prober Prober, chainIDs map[common.Network]string) *Monitor {
	return &Monitor{
		dg:       dg,
		prober:   prober,
		networks: common.Networks,
		chainIDs: chainIDs,
		now:      time.Now,
	}
}

func (m *Monitor) Name() string {
	return JobName
}

func (m *Monitor) Shutdown(ctx context.Context) error {
	var result *multierror.Error
	for _, cleanup := range m.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return errors.WithStack(result.ErrorOrNil())
}

type cycleStats struct {
	checked     int
	healthy     int
	down        int
	inactive    int
	reachable   int
	unreachable int
	failedWrite int
}

// Run executes one monitoring cycle over all networks. Node level failures are
// logged and never abort the cycle.
func (m *Monitor) Run(ctx context.Context) error {
	start := time.Now()
	ctx = logger.WithContext(ctx, slog.String("module", JobName))

	var (
		stats  cycleStats
		result *multierror.Error
	)
	for _, network := range m.networks {
		if err := m.checkNetwork(ctx, network, &stats); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "network %s", network))
		}
	}

	logger.InfoContext(ctx, "Node checks completed",
		slogx.Int("checked", stats.checked),
		slogx.Int("healthy", stats.healthy),
		slogx.Int("down", stats.down),
		slogx.Int("inactive", stats.inactive),
		slogx.Int("reachable", stats.reachable),
		slogx.Int("unreachable", stats.unreachable),
		slogx.Int("failed_writes", stats.failedWrite),
		slogx.Duration("duration", time.Since(start)),
	)
	return errors.WithStack(result.ErrorOrNil())
}

func (m *Monitor) checkNetwork(ctx context.Context, network common.Network, stats *cycleStats) error {
	ctx = logger.WithContext(ctx, slogx.Stringer("network", network))
	chainID, ok := m.chainIDs[network]
	if !ok || chainID == "" {
		chainID = network.ChainID()
	}

	apiNodes, err := m.dg.GetNodes(ctx, datagateway.GetNodesParams{
		Network:  network,
		Roles:    []entity.NodeRole{entity.NodeRoleAPI},
		Statuses: monitoredStatuses,
	})
	if err != nil {
		return errors.Wrap(err, "can't get api nodes")
	}
	for _, node := range apiNodes {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		m.checkAPINode(ctx, node, chainID, stats)
	}

	lightNodes, err := m.dg.GetNodes(ctx, datagateway.GetNodesParams{
		Network:  network,
		Roles:    lightRoles,
		Statuses: monitoredStatuses,
	})
	if err != nil {
		return errors.Wrap(err, "can't get seed and producer nodes")
	}
	for _, node := range lightNodes {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		m.checkReachability(ctx, node, stats)
	}
	return nil
}

func (m *Monitor) checkAPINode(ctx context.Context, node entity.Node, chainID string, stats *cycleStats) {
	ctx = logger.WithContext(ctx, slogx.Int64("node_id", node.ID), slogx.String("url", node.URL))
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 1024)
			buf = buf[:runtime.Stack(buf, false)]
			logger.ErrorContext(ctx, "Something went wrong, panic while checking node",
				errors.Wrap(errs.SomethingWentWrong, fmt.Sprint(r)),
				slog.String("stacktrace", string(buf)),
			)
		}
	}()

	stats.checked++
	logger.DebugContext(ctx, "Starting node checks")

	state := &nodeState{node: node, chainID: chainID, stats: stats}
	for _, step := range m.steps() {
		if step(ctx, state) == stepHalt {
			break
		}
	}
}

func (m *Monitor) checkReachability(ctx context.Context, node entity.Node, stats *cycleStats) {
	ctx = logger.WithContext(ctx,
		slogx.Int64("node_id", node.ID),
		slogx.Stringer("role", node.Role),
		slogx.String("url", node.URL),
	)
	ok, err := m.prober.Reachable(ctx, node.URL)
	metrics.ProbeOutcomes.WithLabelValues(node.Network.String(), "reachability", probe.Reason(err)).Inc()
	if !ok {
		stats.unreachable++
		logger.WarnContext(ctx, "Node is unreachable", slogx.String("reason", probe.Reason(err)), slogx.Error(err))
		return
	}
	stats.reachable++
	logger.DebugContext(ctx, "Node is reachable")
}

// ShouldDemote reports whether a node whose latest check got no response
// must be marked down, given its most recent checks (newest first).
func ShouldDemote(recent []entity.NodeCheck) bool {
	if len(recent) < demotionWindow {
		return true
	}
	for _, check := range recent[:demotionWindow] {
		if check.ServerVersion != "" {
			return false
		}
	}
	return true
}
