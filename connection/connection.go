// Package connection resolves immutable connection descriptors: a named
// connection string taken from configuration, the parameter prefix of the
// provider and the database name found in the connection string.
package connection

import (
	"github.com/abhissng/sqlhelper/adapters/log"
	"github.com/abhissng/sqlhelper/blame"
	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/abhissng/sqlhelper/utils/helpers"
)

// DefaultPrefix is the prefix NewNamed passes on behalf of its callers.
const DefaultPrefix = "@"

// Connection describes one logical database connection. It is built once by
// New and never changes afterwards, so it can be shared between goroutines.
type Connection struct {
	name             string
	connectionString string
	parameterPrefix  string
	sourceType       string
	databaseName     string
	provider         Provider
	factory          Factory
	configuration    Source
}

// New resolves a Connection.
//
// An empty name becomes "Default". An empty connectionString is looked up in
// configuration under the resolved name, and when configuration has no entry
// the name argument itself is used as the connection string. An empty
// parameterPrefix is inferred from the provider. Only a nil configuration is
// rejected.
func New(configuration Source, factory Factory, connectionString, name, parameterPrefix string, opts ...Option) (*Connection, error) {
	if helpers.IsNil(configuration) {
		return nil, blame.InvalidArgumentError("configuration")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	resolvedName := name
	if resolvedName == "" {
		resolvedName = constant.DefaultConnectionName
	}

	configured, ok := configuration.GetConnectionString(resolvedName)
	resolvedConnectionString := connectionString
	switch {
	case connectionString == "" && ok:
		resolvedConnectionString = configured
	case connectionString == "":
		resolvedConnectionString = name
	}

	sourceType, sig := signatureOf(factory, o.provider)
	prefix, databaseName := resolvePrefix(sig, parameterPrefix, resolvedConnectionString)

	c := &Connection{
		name:             resolvedName,
		connectionString: resolvedConnectionString,
		parameterPrefix:  prefix,
		sourceType:       sourceType,
		databaseName:     databaseName,
		provider:         sig.Provider,
		factory:          factory,
		configuration:    configuration,
	}

	if o.logger != nil {
		o.logger.Debug(constant.ConnectionResolved,
			log.String("name", c.name),
			log.String("source_type", c.sourceType),
			log.Stringer("provider", c.provider),
			log.String("parameter_prefix", c.parameterPrefix),
			log.String("database_name", c.databaseName),
			log.Bool("from_configuration", connectionString == "" && ok),
			log.String("connection_string", Redact(c.connectionString)),
		)
	}
	return c, nil
}

// NewNamed resolves a Connection from configuration alone with the "@" prefix.
// Because the prefix counts as supplied, a database name is only extracted for
// SqlClient providers.
func NewNamed(configuration Source, factory Factory, name string, opts ...Option) (*Connection, error) {
	return New(configuration, factory, "", name, DefaultPrefix, opts...)
}

// Name returns the logical name of the connection.
func (c *Connection) Name() string {
	return c.name
}

// ConnectionString returns the resolved connection string.
func (c *Connection) ConnectionString() string {
	return c.connectionString
}

// ParameterPrefix returns the prefix placed before bound parameter names.
func (c *Connection) ParameterPrefix() string {
	return c.parameterPrefix
}

// SourceType returns the type signature of the factory.
func (c *Connection) SourceType() string {
	return c.sourceType
}

// DatabaseName returns the database found in the connection string, or "".
func (c *Connection) DatabaseName() string {
	return c.databaseName
}

// Provider returns the provider whose rules produced the prefix.
func (c *Connection) Provider() Provider {
	return c.provider
}

// Factory returns the provider factory. The Connection does not own it.
func (c *Connection) Factory() Factory {
	return c.factory
}

// Configuration returns the source the connection string was looked up in.
func (c *Connection) Configuration() Source {
	return c.configuration
}

// Redacted returns the connection string with passwords masked.
func (c *Connection) Redacted() string {
	return Redact(c.connectionString)
}
