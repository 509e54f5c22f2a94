package cmd

import (
	"context"

	"github.com/bpmon-network/bpmon/core/scheduler"
	"github.com/bpmon-network/bpmon/internal/config"
	"github.com/bpmon-network/bpmon/modules/nodecheck"
	"github.com/bpmon-network/bpmon/modules/voters"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// checkTargets maps the check argument to the module it runs.
var checkTargets = map[string]string{
	"nodes":  nodecheck.JobName,
	"voters": voters.JobName,
}

func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "check {nodes|voters}",
		Short:     "Run a single node check or voters aggregation cycle and exit",
		Example:   `bpmon check nodes --config ./config.yaml`,
		Args:      cobra.ExactValidArgs(1),
		ValidArgs: []string{"nodes", "voters"},
		RunE:      checkHandler,
	}
}

func checkHandler(cmd *cobra.Command, args []string) error {
	conf := config.Load()
	ctx := cmd.Context()

	module, ok := checkTargets[args[0]]
	if !ok {
		return errors.Errorf("unknown check target %q", args[0])
	}
	ctx = logger.WithContext(ctx, slogx.String("module", module))

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	worker, err := do.InvokeNamed[*scheduler.Scheduler](injector, module)
	if err != nil {
		return errors.Wrapf(err, "can't init module %q", module)
	}
	defer func() {
		if err := worker.Job.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.ErrorContext(ctx, "Failed to shutdown job", err)
		}
	}()

	logger.InfoContext(ctx, "Running single cycle")
	if err := worker.RunOnce(ctx); err != nil {
		return errors.Wrap(err, "cycle failed")
	}
	logger.InfoContext(ctx, "Cycle completed")
	return nil
}
