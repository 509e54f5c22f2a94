package postgres

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/bpmon-network/bpmon/pkg/logger"
	"github.com/bpmon-network/bpmon/pkg/logger/slogx"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	pgxslog "github.com/mcosta74/pgx-slog"
)

const (
	DefaultMaxConns    = 8
	DefaultMinConns    = 0
	DefaultPingTimeout = 10 * time.Second
	DefaultLogLevel    = tracelog.LogLevelError
)

type Config struct {
	Host     string `mapstructure:"host"`     // Default is 127.0.0.1
	Port     int    `mapstructure:"port"`     // Default is 5432
	User     string `mapstructure:"user"`     // Default is empty
	Password string `mapstructure:"password"` // Default is empty
	DBName   string `mapstructure:"db_name"`  // Default is postgres
	SSLMode  string `mapstructure:"ssl_mode"` // Default is prefer

	// URL takes precedence over the discrete fields when set.
	URL string `mapstructure:"url"`

	MaxConns        int32         `mapstructure:"max_conns"`         // Default is 8
	MinConns        int32         `mapstructure:"min_conns"`         // Default is 0
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // Default is pgxpool's 1h

	// Debug traces every query.
	Debug bool `mapstructure:"debug"`
}

// NewPool opens a connection pool and verifies the database is reachable.
func NewPool(ctx context.Context, conf Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(conf.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse postgres config")
	}
	poolConfig.MaxConns = utils.Default(conf.MaxConns, DefaultMaxConns)
	poolConfig.MinConns = utils.Default(conf.MinConns, DefaultMinConns)
	if conf.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = conf.MaxConnLifetime
	}
	poolConfig.ConnConfig.Tracer = conf.QueryTracer()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create a new connection pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrapf(err, "can't connect to postgres %s", conf.Redacted())
	}

	logger.DebugContext(ctx, "Connected to postgres",
		slogx.String("database", conf.Redacted()),
		slogx.Int64("max_conns", int64(poolConfig.MaxConns)),
	)
	return pool, nil
}

// String returns the connection string, the url when set or a key/value DSN.
func (conf Config) String() string {
	if conf.URL != "" {
		return conf.URL
	}

	pairs := []string{
		"host=" + utils.Default(conf.Host, "127.0.0.1"),
		fmt.Sprintf("port=%d", utils.Default(conf.Port, 5432)),
		"dbname=" + utils.Default(conf.DBName, "postgres"),
		"sslmode=" + utils.Default(conf.SSLMode, "prefer"),
	}
	if conf.User != "" {
		pairs = append(pairs, "user="+conf.User)
	}
	if conf.Password != "" {
		pairs = append(pairs, "password="+conf.Password)
	}
	return strings.Join(pairs, " ")
}

// Redacted describes the target database without credentials.
func (conf Config) Redacted() string {
	if conf.URL != "" {
		u, err := url.Parse(conf.URL)
		if err != nil {
			return "<invalid url>"
		}
		return u.Redacted()
	}
	return fmt.Sprintf("%s:%d/%s", utils.Default(conf.Host, "127.0.0.1"), utils.Default(conf.Port, 5432), utils.Default(conf.DBName, "postgres"))
}

func (conf Config) QueryTracer() pgx.QueryTracer {
	loglevel := DefaultLogLevel
	if conf.Debug {
		loglevel = tracelog.LogLevelTrace
	}
	return &tracelog.TraceLog{
		Logger:   pgxslog.NewLogger(logger.With("package", "postgres")),
		LogLevel: loglevel,
	}
}
