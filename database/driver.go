package database

import (
	"database/sql"

	"github.com/abhissng/sqlhelper/connection"
)

// DriverFactory opens handles through any driver registered with database/sql.
type DriverFactory struct {
	DriverName string
	Kind       connection.Provider
}

// NewDriverFactory returns a factory for driverName that follows the rules of kind.
func NewDriverFactory(driverName string, kind connection.Provider) *DriverFactory {
	return &DriverFactory{DriverName: driverName, Kind: kind}
}

// TypeName returns the factory type signature with the driver name appended.
func (f *DriverFactory) TypeName() string {
	return connection.TypeNameOf(f) + "[" + f.DriverName + "]"
}

// Provider returns the declared provider.
func (f *DriverFactory) Provider() connection.Provider {
	return f.Kind
}

// Open returns a pool for dsn; sql.Open fails only for unregistered drivers.
func (f *DriverFactory) Open(dsn string, opts ...DBOption) (*sql.DB, error) {
	db, err := sql.Open(f.DriverName, dsn)
	if err != nil {
		return nil, openError(f, err, opts)
	}
	return finishOpen(f, db, dsn, opts), nil
}
