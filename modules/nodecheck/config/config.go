package config

import (
	"time"

	"github.com/bpmon-network/bpmon/internal/postgres"
)

type Config struct {
	Postgres   postgres.Config `mapstructure:"postgres"`
	Interval   time.Duration   `mapstructure:"interval"`     // Default is 1h
	RunOnStart bool            `mapstructure:"run_on_start"` // Run one cycle right after start up
	Timeout    time.Duration   `mapstructure:"timeout"`      // Per probe round trip. Default is 10s
	Burst      BurstConfig     `mapstructure:"burst"`

	// HistoryAccount is the account queried by the history probe.
	HistoryAccount string `mapstructure:"history_account"`
}

type BurstConfig struct {
	Count     int    `mapstructure:"count"`      // Concurrent balance requests per node, clamped to [1, 50]. Default is 5
	PublicKey string `mapstructure:"public_key"` // FIO public key used by balance requests
}
