// Package database provides the provider factories a connection.Connection
// describes. Each factory knows its provider and can open a *sql.DB for a
// connection string; resolving a descriptor never calls Open.
package database

import (
	"database/sql"

	"github.com/abhissng/sqlhelper/adapters/log"
	"github.com/abhissng/sqlhelper/blame"
	"github.com/abhissng/sqlhelper/connection"
	"github.com/abhissng/sqlhelper/utils/constant"
)

// Factory is a connection.KindedFactory that can also open database handles.
type Factory interface {
	connection.KindedFactory
	Open(dsn string, opts ...DBOption) (*sql.DB, error)
}

// OpenConnection opens a handle for a resolved connection using its own factory.
func OpenConnection(c *connection.Connection, opts ...DBOption) (*sql.DB, error) {
	factory, ok := c.Factory().(Factory)
	if !ok {
		return nil, blame.UnknownProviderError(c.SourceType())
	}
	return factory.Open(c.ConnectionString(), opts...)
}

// finishOpen applies pool settings to db and logs the outcome.
func finishOpen(factory Factory, db *sql.DB, dsn string, opts []DBOption) *sql.DB {
	cfg := NewDBOptions(opts...)
	cfg.apply(db)
	if metrics := cfg.GetMetrics(); metrics != nil {
		metrics.RecordOpen(factory.Provider().String(), nil)
	}

	if logger := cfg.GetLogger(); logger != nil {
		logger.Debug(constant.ProviderOpened,
			log.Stringer("provider", factory.Provider()),
			log.String("source_type", factory.TypeName()),
			log.Int("max_conns", cfg.GetMaxConns()),
			log.String("dsn", connection.Redact(dsn)),
		)
	}
	return db
}

func openError(factory Factory, err error, opts []DBOption) error {
	if metrics := NewDBOptions(opts...).GetMetrics(); metrics != nil {
		metrics.RecordOpen(factory.Provider().String(), err)
	}
	return blame.ProviderOpenError(factory.Provider().String(), err)
}
