package database

import (
	"database/sql"

	"github.com/abhissng/sqlhelper/connection"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// SQLiteFactory opens SQLite handles through the pure Go modernc.org/sqlite driver.
type SQLiteFactory struct{}

// TypeName returns the factory type signature.
func (f *SQLiteFactory) TypeName() string {
	return connection.TypeNameOf(f)
}

// Provider reports connection.SQLite.
func (f *SQLiteFactory) Provider() connection.Provider {
	return connection.SQLite
}

// Open returns a pool for the database file or ":memory:".
func (f *SQLiteFactory) Open(dsn string, opts ...DBOption) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, openError(f, err, opts)
	}
	return finishOpen(f, db, dsn, opts), nil
}
