package voters

import (
	"context"

	"github.com/bpmon-network/bpmon/common"
	"github.com/bpmon-network/bpmon/core/scheduler"
	"github.com/bpmon-network/bpmon/internal/config"
	"github.com/bpmon-network/bpmon/internal/postgres"
	"github.com/bpmon-network/bpmon/modules/voters/api/httphandler"
	"github.com/bpmon-network/bpmon/modules/voters/archive"
	"github.com/bpmon-network/bpmon/modules/voters/chainclient"
	repository "github.com/bpmon-network/bpmon/modules/voters/repository/postgres"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
)

const Version = "v0.1.0"

func New(injector do.Injector) (*scheduler.Scheduler, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	moduleConf := conf.Modules.Voters

	pg, err := postgres.NewPool(ctx, moduleConf.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "can't create postgres connection pool")
	}
	repo := repository.NewRepository(pg)

	clientConf := chainclient.Config{
		Timeout:  moduleConf.Timeout,
		PageSize: moduleConf.PageSize,
		Debug:    conf.Logger.Debug,
	}
	newSource := func(nodeURL string) (SnapshotSource, error) {
		client, err := chainclient.New(nodeURL, clientConf)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return client, nil
	}

	fallbackURLs := make(map[common.Network]string, len(common.Networks))
	for _, network := range common.Networks {
		fallbackURLs[network] = conf.Chains.Get(network).APIURL
	}

	opts := []AggregatorOption{
		WithFallbackURLs(fallbackURLs),
		WithHandleValidationConcurrency(moduleConf.HandleValidationConcurrency),
	}
	if moduleConf.Archive.Enabled {
		archiver, err := archive.NewS3Archiver(ctx, moduleConf.Archive)
		if err != nil {
			pg.Close()
			return nil, errors.Wrap(err, "can't create snapshot archiver")
		}
		opts = append(opts, WithArchiver(archiver))
		logger.InfoContext(ctx, "Voters snapshot archive enabled",
			slogx.String("bucket", moduleConf.Archive.Bucket),
			slogx.String("prefix", moduleConf.Archive.Prefix),
		)
	}

	aggregator := NewAggregator(repo, newSource, opts...)
	aggregator.cleanupFuncs = append(aggregator.cleanupFuncs, func(ctx context.Context) error {
		pg.Close()
		return nil
	})

	if err := mountAPI(ctx, injector, aggregator, httphandler.New(repo)); err != nil {
		return nil, errors.Wrap(err, "can't mount voters API")
	}

	return scheduler.New(aggregator, moduleConf.Interval, moduleConf.RunOnStart), nil
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
			logger.WarnContext(ctx, "Failed to release voters resources", slogx.Error(shutdownErr))
		}
		return errors.WithStack(err)
	}
	logger.InfoContext(ctx, "Mounted voters HTTP handler")
	return nil
}
