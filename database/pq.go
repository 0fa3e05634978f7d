package database

import (
	"database/sql"

	"github.com/abhissng/sqlhelper/connection"
	"github.com/lib/pq"
)

// PQFactory opens PostgreSQL handles through lib/pq. It accepts the same URL and
// keyword/value DSNs as PostgresFactory.
type PQFactory struct{}

// TypeName returns the factory type signature.
func (f *PQFactory) TypeName() string {
	return connection.TypeNameOf(f)
}

// Provider reports connection.PostgreSQL.
func (f *PQFactory) Provider() connection.Provider {
	return connection.PostgreSQL
}

// Open parses dsn and returns a pool. No connection is made until first use.
func (f *PQFactory) Open(dsn string, opts ...DBOption) (*sql.DB, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, openError(f, err, opts)
	}
	return finishOpen(f, sql.OpenDB(connector), dsn, opts), nil
}
