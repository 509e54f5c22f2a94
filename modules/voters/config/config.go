package config

import (
	"time"

	"github.com/bpmon-network/bpmon/internal/postgres"
)

type Config struct {
	Postgres   postgres.Config `mapstructure:"postgres"`
	Interval   time.Duration   `mapstructure:"interval"`     // Default is 1h
	RunOnStart bool            `mapstructure:"run_on_start"` // Run one cycle right after start up
	Timeout    time.Duration   `mapstructure:"timeout"`      // Per snapshot page request. Default is 30s
	PageSize   int             `mapstructure:"page_size"`    // Voter rows per page. Default is 2500

	// HandleValidationConcurrency bounds concurrent proxy handle lookups. Default is 8
	HandleValidationConcurrency int `mapstructure:"handle_validation_concurrency"`

	Archive ArchiveConfig `mapstructure:"archive"`
}

// ArchiveConfig configures the Parquet snapshot archive on S3.
type ArchiveConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Bucket   string `mapstructure:"bucket"`
	Region   string `mapstructure:"region"`
	Prefix   string `mapstructure:"prefix"`
	Endpoint string `mapstructure:"endpoint"` // Optional S3 compatible endpoint
}
