package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bpmon-network/bpmon/common/errs"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/bpmon-network/bpmon/pkg/metrics"
	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
)

// DefaultInterval is the cadence used when none is configured.
const DefaultInterval = time.Hour

// Make sure to implement the Worker interface
var _ Worker = (*Scheduler)(nil)

// Scheduler runs a job on a fixed cadence. Cycles never overlap: a cycle
// that outlasts the interval delays the next one.
type Scheduler struct {
	Job        Job
	Interval   time.Duration
	RunOnStart bool

	started  atomic.Bool
	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

// New create new scheduler for the job
func New(job Job, interval time.Duration, runOnStart bool) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		Job:        job,
		Interval:   interval,
		RunOnStart: runOnStart,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (s *Scheduler) Shutdown() error {
	return s.ShutdownWithContext(context.Background())
}

func (s *Scheduler) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.ShutdownWithContext(ctx)
}

func (s *Scheduler) ShutdownWithContext(ctx context.Context) (err error) {
	s.quitOnce.Do(func() {
		close(s.quit)
		if !s.started.Load() {
			// never ran, release the job resources here
			err = errors.WithStack(s.Job.Shutdown(ctx))
			return
		}
		select {
		case <-s.done:
		case <-time.After(180 * time.Second):
			err = errors.Wrap(errs.Timeout, "scheduler shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "scheduler shutdown context canceled")
		}
	})
	return
}

func (s *Scheduler) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errors.New("scheduler already started")
	}
	defer close(s.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "scheduler"),
		slog.String("job", s.Job.Name()),
	)

	// cancel the in-flight cycle once quit is requested
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	defer func() {
		if err := s.Job.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.ErrorContext(ctx, "Failed to shutdown job", err)
		}
	}()

	logger.InfoContext(ctx, "Scheduler started",
		slogx.Duration("interval", s.Interval),
		slogx.Bool("run_on_start", s.RunOnStart),
	)

	if s.RunOnStart {
		s.cycle(ctx)
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping scheduler")
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.cycle(ctx)
			logger.DebugContext(ctx, "Waiting for next cycle")
		}
	}
}

// RunOnce executes a single cycle of the job and returns its error.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	ctx = logger.WithContext(ctx, slog.String("job", s.Job.Name()))
	start := time.Now()
	err := s.Job.Run(ctx)
	observeCycle(s.Job.Name(), start, err)
	return errors.WithStack(err)
}

func (s *Scheduler) cycle(ctx context.Context) {
	start := time.Now()
	err := s.runRecovered(ctx)
	observeCycle(s.Job.Name(), start, err)
	if err != nil {
		logger.ErrorContext(ctx, "Cycle failed", err, slogx.Duration("duration", time.Since(start)))
		return
	}
	logger.InfoContext(ctx, "Cycle completed", slogx.Duration("duration", time.Since(start)))
}

func (s *Scheduler) runRecovered(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(errs.SomethingWentWrong, "panic in job cycle: %v", r)
		}
	}()
	return errors.WithStack(s.Job.Run(ctx))
}

func observeCycle(job string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.CycleDuration.WithLabelValues(job, result).Observe(time.Since(start).Seconds())
}
