package scheduler

import "context"

// Worker is a long running process started by the run command.
type Worker interface {
	Run(ctx context.Context) error
}

// Job is one unit of periodic work. Run executes a single cycle.
type Job interface {
	Name() string

	// Run executes one cycle. A returned error is logged by the scheduler
	// and does not stop later cycles.
	Run(ctx context.Context) error

	// Shutdown releases the job resources, called once after the last cycle.
	Shutdown(ctx context.Context) error
}
