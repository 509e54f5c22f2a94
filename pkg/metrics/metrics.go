// Package metrics holds the prometheus collectors of the node monitor and the voting power aggregator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bpmon"

var (
	// cycle durations from 100ms to ~27 minutes
	cycleDurationBuckets = prometheus.ExponentialBuckets(0.1, 2, 15)

	// probe latency from 5ms to ~20s
	probeDurationBuckets = prometheus.ExponentialBuckets(0.005, 2, 13)
)

var (
	ProbeOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(namespace, "nodecheck", "probe_outcomes_total"),
		Help: "Outcomes of node probes by probe kind",
	}, []string{"network", "probe", "outcome"})

	ProbeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(namespace, "nodecheck", "probe_duration_seconds"),
		Help:    "Latency of node probes in seconds",
		Buckets: probeDurationBuckets,
	}, []string{"probe"})

	StatusTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(namespace, "nodecheck", "status_transitions_total"),
		Help: "Node status written by the health monitor",
	}, []string{"network", "status"})

	StoreFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(namespace, "store", "write_failures_total"),
		Help: "Failed writes to the relational store",
	}, []string{"module", "operation"})

	CycleDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(namespace, "scheduler", "cycle_duration_seconds"),
		Help:    "Duration of scheduled job cycles in seconds",
		Buckets: cycleDurationBuckets,
	}, []string{"job", "result"})

	SnapshotVoters = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(namespace, "voters", "snapshot_voters"),
		Help: "Number of voter rows in the latest snapshot",
	}, []string{"network"})

	MalformedWeights = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(namespace, "voters", "malformed_weights_total"),
		Help: "Voter rows whose last_vote_weight could not be parsed",
	}, []string{"network"})
)

// Registry is the registry exposed on the metrics endpoint.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		ProbeOutcomes,
		ProbeDuration,
		StatusTransitions,
		StoreFailures,
		CycleDuration,
		SnapshotVoters,
		MalformedWeights,
	)
}

// Handler returns the http handler serving the registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
