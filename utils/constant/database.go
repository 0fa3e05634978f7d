package constant

import (
	"github.com/abhissng/sqlhelper/utils/types"
)

// Database constants
const (
	PostgreSQL types.DBType = "postgres"
	MySQL      types.DBType = "mysql"
	SQLite     types.DBType = "sqlite"
)

// DefaultConnectionName is used when a connection is requested without a name.
const DefaultConnectionName = "Default"
