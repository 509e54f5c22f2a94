package cmd

import (
	"context"
	"log/slog"

	"github.com/bpmon-network/bpmon/internal/config"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var (
	// root command
	cmd = &cobra.Command{
		Use: "bpmon",
		Long: `Monitors the health of FIO block producer nodes and aggregates the
voting power delegated to producers and proxies.`,
	}

	// sub-commands
	cmds = []*cobra.Command{
		NewRunCommand(),
		NewCheckCommand(),
		NewVersionCommand(),
		NewMigrateCommand(),
	}
)

// Execute runs the root command.
func Execute(ctx context.Context) {
	var configFile string

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		// Initialize configuration
		config := config.Parse(configFile)

		// Initialize logger
		if err := logger.Init(config.Logger); err != nil {
			logger.Panic("Failed to initialize logger: %v", slogx.Error(err), slog.Any("config", config.Logger))
		}
	})

	// Register sub-commands
	cmd.AddCommand(cmds...)

	// Execute command
	if err := cmd.ExecuteContext(ctx); err != nil {
		// Cobra will print the error message by default
		logger.DebugContext(ctx, "Error executing command", slogx.Error(err))
	}
}
