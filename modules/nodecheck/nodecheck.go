package nodecheck

import (
	"context"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/core/scheduler"
	"github.com/bpmon-network/bpmon/internal/config"
	"github.com/bpmon-network/bpmon/internal/postgres"
	"github.com/bpmon-network/bpmon/modules/nodecheck/api/httphandler"
	"github.com/bpmon-network/bpmon/modules/nodecheck/probe"
	repository "github.com/bpmon-network/bpmon/modules/nodecheck/repository/postgres"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
)

const Version = "v0.1.0"

// New wires the node health monitor and mounts its read API.
func New(injector do.Injector) (*scheduler.Scheduler, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	moduleConf := conf.Modules.NodeCheck

	pg, err := postgres.NewPool(ctx, moduleConf.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "can't create postgres connection pool")
	}
	repo := repository.NewRepository(pg)

	if moduleConf.Burst.PublicKey == "" {
		logger.WarnContext(ctx, "Burst check public key is not configured, burst checks will fail")
	}
	prober := probe.New(probe.Config{
		Timeout:        moduleConf.Timeout,
		HistoryAccount: moduleConf.HistoryAccount,
		BurstCount:     moduleConf.Burst.Count,
		BurstPublicKey: moduleConf.Burst.PublicKey,
		Debug:          conf.Logger.Debug,
	})

	chainIDs := make(map[common.Network]string, len(common.Networks))
	for _, network := range common.Networks {
		chainIDs[network] = conf.Chains.Get(network).ChainID
	}

	monitor := NewMonitor(repo, prober, chainIDs)
	monitor.cleanupFuncs = append(monitor.cleanupFuncs, func(ctx context.Context) error {
		pg.Close()
		return nil
	})

	if err := mountAPI(ctx, injector, monitor, httphandler.New(repo)); err != nil {
		return nil, errors.Wrap(err, "can't mount nodecheck API")
	}

	return scheduler.New(monitor, moduleConf.Interval, moduleConf.RunOnStart), nil
}

type apiMounter interface {
	Mount(router fiber.Router) error
}

// mountAPI mounts the read API when an HTTP server is provided. A failed mount
// shuts the job down so the connections it owns are released.
func mountAPI(ctx context.Context, injector do.Injector, job scheduler.Job, api apiMounter) error {
	httpServer, err := do.Invoke[*fiber.App](injector)
	if err != nil {
		return nil
	}
	if err := api.Mount(httpServer); err != nil {
		if shutdownErr := job.Shutdown(ctx); shutdownErr != nil {
			logger.WarnContext(ctx, "Failed to release nodecheck resources", slogx.Error(shutdownErr))
		}
		return errors.WithStack(err)
	}
	logger.InfoContext(ctx, "Mounted nodecheck HTTP handler")
	return nil
}
