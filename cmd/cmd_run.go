package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/bpmon-network/bpmon/core/scheduler"
	"github.com/bpmon-network/bpmon/internal/config"
	"github.com/bpmon-network/bpmon/modules/nodecheck"
	"github.com/bpmon-network/bpmon/modules/voters"
	"github.com/bpmon-network/bpmon/pkg/errorhandler"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/bpmon-network/bpmon/pkg/metrics"
	"github.com/bpmon-network/bpmon/pkg/middleware/requestcontext"
	"github.com/bpmon-network/bpmon/pkg/middleware/requestlogger"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Register Modules
var Modules = do.Package(
	do.LazyNamed(nodecheck.JobName, nodecheck.New),
	do.LazyNamed(voters.JobName, voters.New),
)

// moduleNames lists every module in start order.
var moduleNames = []string{nodecheck.JobName, voters.JobName}

func NewRunCommand() *cobra.Command {
	// Create command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start bpmon service",
		RunE:  runHandler,
	}

	// Add local flags
	flags := runCmd.Flags()
	flags.Bool("api-only", false, "Run only API server")
	flags.String("modules", "", "Enable specific modules to run. E.g. `nodecheck,voters`")

	// Bind flags to configuration
	config.BindPFlag("api_only", flags.Lookup("api-only"))
	config.BindPFlag("enable_modules", flags.Lookup("modules"))

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Initialize HTTP server
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		withClientIP, err := requestcontext.WithClientIP(conf.HTTPServer.RequestIP)
		if err != nil {
			return nil, errors.Wrap(err, "invalid request ip configuration")
		}

		app := fiber.New(fiber.Config{
			AppName:      "bpmon",
			ErrorHandler: errorhandler.NewHTTPErrorHandler(),
		})
		app.
			Use(favicon.New()).
			Use(cors.New()).
			Use(requestid.New()).
			Use(requestcontext.New(
				requestcontext.WithRequestId(),
				withClientIP,
			)).
			Use(requestlogger.New(conf.HTTPServer.Logger)).
			Use(fiberrecover.New(fiberrecover.Config{
				EnableStackTrace: true,
				StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
					buf := make([]byte, 1024) // bufLen = 1024
					buf = buf[:runtime.Stack(buf, false)]
					logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", errors.Errorf("panic: %v", e), slog.String("stacktrace", string(buf)))
				},
			})).
			Use(compress.New(compress.Config{
				Level: compress.LevelDefault,
			}))

		// Health check
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.WithStack(c.SendStatus(http.StatusOK))
		})
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

		return app, nil
	})

	// Initialize worker context to separate worker's lifecycle from main process
	ctxWorker, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	// Run modules
	{
		modules, err := enabledModules(conf.EnableModules)
		if err != nil {
			return errors.WithStack(err)
		}
		for _, module := range modules {
			ctx := logger.WithContext(ctxWorker, slogx.String("module", module))

			worker, err := do.InvokeNamed[*scheduler.Scheduler](injector, module)
			if err != nil {
				return errors.Wrapf(err, "can't init module %q", module)
			}

			// Run scheduler
			if !conf.APIOnly {
				go func() {
					// stop main process if scheduler stopped
					defer stop()

					logger.InfoContext(ctx, "Starting module scheduler")
					if err := worker.Run(ctx); err != nil {
						logger.PanicContext(ctx, "Something went wrong, error during running scheduler", slogx.Error(err))
					}
				}()
			}
		}
	}

	// Run API server
	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	// Stop application if worker context is done
	go func() {
		<-ctxWorker.Done()
		defer stop()

		logger.InfoContext(ctx, "bpmon workers are stopped. Stopping application...")
	}()

	logger.InfoContext(ctxWorker, "bpmon started")

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return nil
}

// enabledModules normalizes the configured module list. Empty means all modules.
func enabledModules(configured []string) ([]string, error) {
	modules := lo.Map(configured, func(item string, _ int) string { return strings.ToLower(strings.TrimSpace(item)) })
	modules = lo.Uniq(lo.Filter(modules, func(item string, _ int) bool { return item != "" }))
	if len(modules) == 0 {
		return moduleNames, nil
	}
	for _, module := range modules {
		if !lo.Contains(moduleNames, module) {
			return nil, errors.Errorf("Module %q is not supported", module)
		}
	}
	// keep start order, nodecheck feeds the voters node selection
	return lo.Filter(moduleNames, func(item string, _ int) bool { return lo.Contains(modules, item) }), nil
}
