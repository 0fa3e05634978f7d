package viper

import (
	"sort"

	"github.com/abhissng/sqlhelper/adapters/log"
	"github.com/abhissng/sqlhelper/adapters/prometheus"
	"github.com/abhissng/sqlhelper/blame"
	"github.com/abhissng/sqlhelper/connection"
	"github.com/abhissng/sqlhelper/database"
	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/abhissng/sqlhelper/utils/types"
)

// Resolver builds connection descriptors from a loaded configuration.
type Resolver struct {
	source         *Viper
	settings       *Settings
	registry       *database.Registry
	defaultFactory connection.Factory
	logger         *log.Log
	strict         bool
	metrics        *prometheus.MetricsCollector
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithRegistry replaces the built-in factory registry.
func WithRegistry(registry *database.Registry) ResolverOption {
	return func(r *Resolver) {
		r.registry = registry
	}
}

// WithDefaultFactory sets the factory used for names without a Connections entry.
func WithDefaultFactory(factory connection.Factory) ResolverOption {
	return func(r *Resolver) {
		r.defaultFactory = factory
	}
}

// WithLogger passes logger on to every resolution.
func WithLogger(logger *log.Log) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// WithMetrics counts every resolution on collector.
func WithMetrics(collector *prometheus.MetricsCollector) ResolverOption {
	return func(r *Resolver) {
		r.metrics = collector
	}
}

// WithStrict makes Resolve fail for names that are neither declared under
// Connections nor present in ConnectionStrings, instead of using the name as
// the connection string.
func WithStrict() ResolverOption {
	return func(r *Resolver) {
		r.strict = true
	}
}

// NewResolver decodes the settings of source and returns a Resolver over them.
func NewResolver(source *Viper, opts ...ResolverOption) (*Resolver, error) {
	settings, err := source.UnmarshalSettings()
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		source:   source,
		settings: settings,
		registry: database.NewRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Settings returns the decoded settings.
func (r *Resolver) Settings() *Settings {
	return r.settings
}

// Resolve builds the descriptor for name. A Connections entry supplies the factory,
// prefix, provider and, when Host is set, the pieces of a driver DSN. Without an
// entry the default factory is used with the plain ConnectionStrings lookup.
func (r *Resolver) Resolve(name string) (*connection.Connection, error) {
	c, err := r.resolve(name)
	if r.metrics != nil {
		provider := "unresolved"
		if c != nil {
			provider = c.Provider().String()
		}
		r.metrics.RecordResolution(provider, err)
	}
	return c, err
}

func (r *Resolver) resolve(name string) (*connection.Connection, error) {
	var opts []connection.Option
	if r.logger != nil {
		opts = append(opts, connection.WithLogger(r.logger))
	}

	lookup := name
	if lookup == "" {
		lookup = constant.DefaultConnectionName
	}

	entry, ok := r.settings.Connection(lookup)
	if !ok {
		if _, present := r.source.GetConnectionString(lookup); r.strict && !present {
			return nil, blame.ConnectionNotFoundError(lookup)
		}
		return connection.New(r.source, r.defaultFactory, "", name, "", opts...)
	}

	factory, err := r.registry.FactoryFor(entry.Provider)
	if err != nil {
		return nil, err
	}
	if entry.Kind != nil {
		opts = append(opts, connection.WithProvider(*entry.Kind))
	}

	connectionString := entry.ConnectionString
	if connectionString == "" && (entry.Host != "" || entry.Database != "") {
		connectionString = database.BuildDSN(dsnType(factory, entry), entry.Host, entry.Database, entry.User, entry.Password, entry.Options)
	}

	return connection.New(r.source, factory, connectionString, name, entry.Prefix, opts...)
}

// dsnType picks the DSN format for an entry: an explicit Kind wins, then the
// provider the factory declares, then the provider name itself.
func dsnType(factory connection.Factory, entry ConnectionSettings) types.DBType {
	if entry.Kind != nil {
		return database.DBTypeForProvider(*entry.Kind)
	}
	if kinded, ok := factory.(connection.KindedFactory); ok {
		if dbType := database.DBTypeForProvider(kinded.Provider()); dbType != "" {
			return dbType
		}
	}
	return database.DBTypeFor(entry.Provider)
}

// ResolveAll resolves every name declared under Connections, in sorted order.
func (r *Resolver) ResolveAll() ([]*connection.Connection, error) {
	names := make([]string, 0, len(r.settings.Connections))
	for name := range r.settings.Connections {
		names = append(names, name)
	}
	sort.Strings(names)

	connections := make([]*connection.Connection, 0, len(names))
	for _, name := range names {
		c, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		connections = append(connections, c)
	}
	return connections, nil
}
