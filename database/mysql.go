package database

import (
	"database/sql"

	"github.com/abhissng/sqlhelper/connection"
	"github.com/go-sql-driver/mysql"
)

// MySQLFactory opens MySQL handles through go-sql-driver/mysql.
// DSNs use the driver format: user:password@tcp(host:port)/dbname?options
type MySQLFactory struct{}

// TypeName returns the factory type signature.
func (f *MySQLFactory) TypeName() string {
	return connection.TypeNameOf(f)
}

// Provider reports connection.MySQL.
func (f *MySQLFactory) Provider() connection.Provider {
	return connection.MySQL
}

// Open parses dsn and returns a pool. No connection is made until first use.
func (f *MySQLFactory) Open(dsn string, opts ...DBOption) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, openError(f, err, opts)
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, openError(f, err, opts)
	}
	return finishOpen(f, sql.OpenDB(connector), dsn, opts), nil
}
