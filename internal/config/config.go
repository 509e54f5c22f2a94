package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bpmon-network/bpmon/common"
	nodecheckconfig "github.com/bpmon-network/bpmon/modules/nodecheck/config"
	votersconfig "github.com/bpmon-network/bpmon/modules/voters/config"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/bpmon-network/bpmon/pkg/middleware/requestcontext"
	"github.com/bpmon-network/bpmon/pkg/middleware/requestlogger"
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "text",
		},
		HTTPServer: HTTPServerConfig{
			Port: 8080,
			Logger: requestlogger.Config{
				SkipPaths: []string{"/", "/metrics"},
			},
		},
		Modules: Modules{
			NodeCheck: nodecheckconfig.Config{
				Interval:       time.Hour,
				Timeout:        10 * time.Second,
				HistoryAccount: "tw4tjkmo4eyd",
				Burst: nodecheckconfig.BurstConfig{
					Count: 5,
				},
			},
			Voters: votersconfig.Config{
				Interval:                    time.Hour,
				Timeout:                     30 * time.Second,
				PageSize:                    2500,
				HandleValidationConcurrency: 8,
			},
		},
	}
)

type Config struct {
	Logger        logger.Config    `mapstructure:"logger"`
	HTTPServer    HTTPServerConfig `mapstructure:"http_server"`
	Chains        Chains           `mapstructure:"chains"`
	Modules       Modules          `mapstructure:"modules"`
	APIOnly       bool             `mapstructure:"api_only"`
	EnableModules []string         `mapstructure:"enable_modules"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"requestip"`
}

type Chains struct {
	Mainnet Chain `mapstructure:"mainnet"`
	Testnet Chain `mapstructure:"testnet"`
}

// Chain holds the per network settings shared by every module.
type Chain struct {
	// ChainID overrides the well-known chain id of the network.
	ChainID string `mapstructure:"chain_id"`

	// APIURL is the fallback node used when no monitored node qualifies.
	APIURL string `mapstructure:"api_url"`
}

// Get returns the chain settings of the network with the chain id resolved.
func (c Chains) Get(network common.Network) Chain {
	var chain Chain
	switch network {
	case common.NetworkMainnet:
		chain = c.Mainnet
	case common.NetworkTestnet:
		chain = c.Testnet
	}
	if chain.ChainID == "" {
		chain.ChainID = network.ChainID()
	}
	return chain
}

type Modules struct {
	NodeCheck nodecheckconfig.Config `mapstructure:"nodecheck"`
	Voters    votersconfig.Config    `mapstructure:"voters"`
}

// Parse parses the configuration from the given file (or ./config.yaml when empty) and environment variables.
func Parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if len(configFile) > 0 && configFile[0] != "" {
			viper.SetConfigFile(configFile[0])
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.WarnContext(ctx, "Config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(config); err != nil {
			logger.PanicContext(ctx, "Failed to unmarshal config", slogx.Error(err))
		}
		logger.InfoContext(ctx, "Config loaded", slogx.String("file", viper.ConfigFileUsed()))
	})

	return *config
}

// Load returns the loaded configuration, parsing it first if needed.
func Load() Config {
	return Parse()
}

// BindPFlag binds a viper key to a command line flag.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, can't bind flag", slogx.Error(err), slogx.String("key", key))
	}
}
