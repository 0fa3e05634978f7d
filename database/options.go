package database

import (
	"database/sql"
	"time"

	"github.com/abhissng/sqlhelper/adapters/log"
	"github.com/abhissng/sqlhelper/adapters/prometheus"
	"github.com/abhissng/sqlhelper/utils/helpers"
)

const (
	defaultMaxConns        = 10
	defaultMaxIdleConns    = 2
	defaultConnMaxLifetime = 30 * time.Minute
)

// DBConfig holds the pool settings applied to an opened *sql.DB.
type DBConfig struct {
	maxConns        int
	maxIdleConns    int
	connMaxLifetime time.Duration
	log             *log.Log
	metrics         *prometheus.MetricsCollector
}

// DBOption defines a function that modifies a DBConfig.
type DBOption func(c *DBConfig)

// NewDBOptions creates a new DBConfig with the given options.
func NewDBOptions(opts ...DBOption) *DBConfig {
	cfg := &DBConfig{
		maxConns:        defaultMaxConns,
		maxIdleConns:    defaultMaxIdleConns,
		connMaxLifetime: defaultConnMaxLifetime,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// GetMaxConns returns the maximum number of open connections.
func (c *DBConfig) GetMaxConns() int {
	return c.maxConns
}

// GetMaxIdleConns returns the maximum number of idle connections.
func (c *DBConfig) GetMaxIdleConns() int {
	return c.maxIdleConns
}

// GetConnMaxLifetime returns how long a connection may be reused.
func (c *DBConfig) GetConnMaxLifetime() time.Duration {
	return c.connMaxLifetime
}

// GetLogger returns the logger, nil when none was set.
func (c *DBConfig) GetLogger() *log.Log {
	return c.log
}

// GetMetrics returns the metrics collector, nil when none was set.
func (c *DBConfig) GetMetrics() *prometheus.MetricsCollector {
	return c.metrics
}

func (c *DBConfig) apply(db *sql.DB) {
	db.SetMaxOpenConns(c.maxConns)
	db.SetMaxIdleConns(c.maxIdleConns)
	db.SetConnMaxLifetime(c.connMaxLifetime)
}

// WithMaxConns sets the maximum number of connections, never below the CPU count.
func WithMaxConns(maxConns int) DBOption {
	maxConns = helpers.GetMaxConns(maxConns)
	return func(c *DBConfig) {
		c.maxConns = maxConns
	}
}

// WithMaxIdleConns sets the maximum number of idle connections.
func WithMaxIdleConns(maxIdle int) DBOption {
	return func(c *DBConfig) {
		if maxIdle >= 0 {
			c.maxIdleConns = maxIdle
		}
	}
}

// WithConnMaxLifetime sets the maximum lifetime of a pooled connection.
func WithConnMaxLifetime(lifetime time.Duration) DBOption {
	return func(c *DBConfig) {
		c.connMaxLifetime = lifetime
	}
}

// WithLogger sets the logger used when a handle is opened.
func WithLogger(logger *log.Log) DBOption {
	return func(c *DBConfig) {
		c.log = logger
	}
}

// WithMetrics counts every Open call on collector.
func WithMetrics(collector *prometheus.MetricsCollector) DBOption {
	return func(c *DBConfig) {
		c.metrics = collector
	}
}
