package voters

import (
	"context"
	"log/slog"
	"time"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/core/scheduler"
	"github.com/bpmon-network/bpmon/internal/entity"
	"github.com/bpmon-network/bpmon/modules/voters/datagateway"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/bpmon-network/bpmon/pkg/metrics"
	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	cstream "github.com/planxnx/concurrent-stream"
	"github.com/samber/lo"
)

const (
	JobName = "voters"

	DefaultHandleValidationConcurrency = 8
)

// SnapshotSource reads chain state from one API node.
type SnapshotSource interface {
	URL() string
	GetVoters(ctx context.Context) ([]entity.Voter, error)
	ValidateHandle(ctx context.Context, handle string) (bool, error)
}

// SourceFactory connects to the API node at nodeURL.
type SourceFactory func(nodeURL string) (SnapshotSource, error)

// Archiver keeps a copy of the voter snapshot a cycle was built from.
type Archiver interface {
	Archive(ctx context.Context, network common.Network, takenAt time.Time, voters []entity.Voter) error
}

// Make sure to implement the Job interface
var _ scheduler.Job = (*Aggregator)(nil)

// Aggregator rebuilds the producer and proxy voting aggregates of every
// network from a fresh voter snapshot.
type Aggregator struct {
	dg                datagateway.VotersDataGateway
	newSource         SourceFactory
	archiver          Archiver
	networks          []common.Network
	fallbackURLs      map[common.Network]string
	handleConcurrency int
	now               func() time.Time

	cleanupFuncs []func(context.Context) error
}

type AggregatorOption func(*Aggregator)

// WithArchiver enables the snapshot archive.
func WithArchiver(archiver Archiver) AggregatorOption {
	return func(a *Aggregator) {
		a.archiver = archiver
	}
}

// WithFallbackURLs sets the API url used per network when no monitored node qualifies.
func WithFallbackURLs(urls map[common.Network]string) AggregatorOption {
	return func(a *Aggregator) {
		a.fallbackURLs = urls
	}
}

func WithHandleValidationConcurrency(n int) AggregatorOption {
	return func(a *Aggregator) {
		if n > 0 {
			a.handleConcurrency = n
		}
	}
}

func NewAggregator(dg datagateway.VotersDataGateway, newSource SourceFactory, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		dg:                dg,
		newSource:         newSource,
		networks:          common.Networks,
		fallbackURLs:      map[common.Network]string{},
		handleConcurrency: DefaultHandleValidationConcurrency,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Aggregator) Name() string {
	return JobName
}

func (a *Aggregator) Shutdown(ctx context.Context) error {
	var result *multierror.Error
	for _, cleanup := range a.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return errors.WithStack(result.ErrorOrNil())
}

// Run aggregates every network. A failing network keeps its previous
// aggregates and does not stop the others.
func (a *Aggregator) Run(ctx context.Context) error {
	ctx = logger.WithContext(ctx, slog.String("module", JobName))

	var result *multierror.Error
	for _, network := range a.networks {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}
		if err := a.aggregateNetwork(ctx, network); err != nil {
			logger.ErrorContext(ctx, "Failed to aggregate voters", err, slogx.Stringer("network", network))
			result = multierror.Append(result, errors.Wrapf(err, "network %s", network))
		}
	}
	return errors.WithStack(result.ErrorOrNil())
}

func (a *Aggregator) aggregateNetwork(ctx context.Context, network common.Network) error {
	ctx = logger.WithContext(ctx, slogx.Stringer("network", network))
	start := time.Now()

	nodeURL, err := a.selectNode(ctx, network)
	if err != nil {
		return errors.WithStack(err)
	}
	source, err := a.newSource(nodeURL)
	if err != nil {
		return errors.Wrapf(err, "can't connect to %s", nodeURL)
	}

	ctx = logger.WithContext(ctx, slogx.String("url", nodeURL))
	logger.InfoContext(ctx, "Fetching voters snapshot")

	takenAt := a.now().UTC()
	voters, err := source.GetVoters(ctx)
	if err != nil {
		return errors.Wrap(err, "can't fetch voters snapshot")
	}
	metrics.SnapshotVoters.WithLabelValues(network.String()).Set(float64(len(voters)))

	graph := BuildDelegationGraph(voters)
	if len(graph.MalformedWeights) > 0 {
		metrics.MalformedWeights.WithLabelValues(network.String()).Add(float64(len(graph.MalformedWeights)))
		logger.WarnContext(ctx, "Malformed vote weights counted as zero",
			slogx.Int("count", len(graph.MalformedWeights)),
			slogx.Any("owners", lo.Subset(graph.MalformedWeights, 0, 10)),
		)
	}

	a.validateHandles(ctx, source, graph.Proxies)

	if a.archiver != nil {
		if err := a.archiver.Archive(ctx, network, takenAt, voters); err != nil {
			metrics.StoreFailures.WithLabelValues(JobName, "archive_snapshot").Inc()
			logger.ErrorContext(ctx, "Failed to archive voters snapshot", err)
		}
	}

	producerVotes, err := a.resolveProducers(ctx, network, graph.Producers)
	if err != nil {
		return errors.WithStack(err)
	}
	proxies := lo.Map(graph.Proxies, func(proxy entity.Proxy, _ int) entity.Proxy {
		proxy.Network = network
		return proxy
	})

	if err := a.replace(ctx, network, producerVotes, proxies); err != nil {
		metrics.StoreFailures.WithLabelValues(JobName, "replace_aggregates").Inc()
		return errors.WithStack(err)
	}

	logger.InfoContext(ctx, "Saved voting aggregates",
		slogx.Int("voters", len(voters)),
		slogx.Int("producers", len(producerVotes)),
		slogx.Int("proxies", len(proxies)),
		slogx.Duration("duration", time.Since(start)),
	)
	return nil
}

// selectNode picks the best ranked candidate node, or the configured fallback url.
func (a *Aggregator) selectNode(ctx context.Context, network common.Network) (string, error) {
	candidates, err := a.dg.GetNodeCandidates(ctx, network)
	if err != nil {
		return "", errors.Wrap(err, "can't get node candidates")
	}
	if ranked := RankCandidates(candidates); len(ranked) > 0 {
		best := ranked[0]
		logger.DebugContext(ctx, "Selected snapshot node",
			slogx.Int64("node_id", best.NodeID),
			slogx.Int64("successful_fetches", best.SuccessfulFetches),
			slogx.Int32("latest_fetch_results", best.LatestFetchResults),
			slogx.Int("candidates", len(ranked)),
		)
		return best.URL, nil
	}

	if fallback := a.fallbackURLs[network]; fallback != "" {
		logger.WarnContext(ctx, "No suitable api node, using fallback api url", slogx.String("url", fallback))
		return fallback, nil
	}
	return "", errors.Wrap(errs.NotFound, "no suitable api node and no fallback api url configured")
}

type handleResult struct {
	index  int
	handle *string
}

// validateHandles clears the handle of every proxy whose handle is not a live
// registration. Lookup failures clear the handle too.
func (a *Aggregator) validateHandles(ctx context.Context, source SnapshotSource, proxies []entity.Proxy) {
	out := make(chan handleResult)
	stream := cstream.NewStream(ctx, a.handleConcurrency, out)

	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	go func() {
		defer stream.Close()
		for i, proxy := range proxies {
			if proxy.FIOAddress == nil {
				continue
			}
			i, proxy := i, proxy
			stream.Go(func() handleResult {
				ok, err := source.ValidateHandle(ctx, *proxy.FIOAddress)
				if err != nil {
					logger.WarnContext(ctx, "Can't validate proxy handle",
						slogx.String("proxy", proxy.Owner),
						slogx.String("handle", *proxy.FIOAddress),
						slogx.Error(err),
					)
					return handleResult{index: i}
				}
				if !ok {
					logger.InfoContext(ctx, "Invalid proxy handle",
						slogx.String("proxy", proxy.Owner),
						slogx.String("handle", *proxy.FIOAddress),
					)
					return handleResult{index: i}
				}
				return handleResult{index: i, handle: proxy.FIOAddress}
			})
		}
	}()

	validated := make(map[int]*string, len(proxies))
	for result := range out {
		validated[result.index] = result.handle
	}
	for i := range proxies {
		proxies[i].FIOAddress = validated[i]
	}
}

// resolveProducers attaches producer ids. Voted accounts that are not known
// producers are skipped.
func (a *Aggregator) resolveProducers(ctx context.Context, network common.Network, votes []entity.ProducerVotes) ([]entity.ProducerVotes, error) {
	owners := lo.Map(votes, func(v entity.ProducerVotes, _ int) string { return v.Owner })
	producers, err := a.dg.GetProducersByOwners(ctx, network, owners)
	if err != nil {
		return nil, errors.Wrap(err, "can't get producers")
	}
	producerIDs := lo.SliceToMap(producers, func(p entity.Producer) (string, int64) {
		return p.Owner, p.ID
	})

	resolved := make([]entity.ProducerVotes, 0, len(votes))
	for _, v := range votes {
		id, ok := producerIDs[v.Owner]
		if !ok {
			logger.DebugContext(ctx, "Skipped votes for unknown producer", slogx.String("producer", v.Owner), slogx.Int("voters", len(v.Voters)))
			continue
		}
		v.ProducerID = id
		v.Network = network
		resolved = append(resolved, v)
	}
	return resolved, nil
}

// replace swaps the network aggregates in a single transaction.
func (a *Aggregator) replace(ctx context.Context, network common.Network, producerVotes []entity.ProducerVotes, proxies []entity.Proxy) error {
	dgTx, err := a.dg.BeginVotersTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := dgTx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "Failed to rollback transaction", slogx.Error(err))
		}
	}()

	if err := dgTx.DeleteProducerVotes(ctx, network); err != nil {
		return errors.Wrap(err, "failed to delete producer votes")
	}
	if err := dgTx.DeleteProxies(ctx, network); err != nil {
		return errors.Wrap(err, "failed to delete proxies")
	}
	for _, votes := range producerVotes {
		if err := dgTx.CreateProducerVotes(ctx, votes); err != nil {
			return errors.Wrapf(err, "failed to create votes of producer %s", votes.Owner)
		}
	}
	for _, proxy := range proxies {
		if err := dgTx.CreateProxy(ctx, proxy); err != nil {
			return errors.Wrapf(err, "failed to create proxy %s", proxy.Owner)
		}
	}

	if err := dgTx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}
