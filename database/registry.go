package database

import (
	"sort"
	"strings"
	"sync"

	"github.com/abhissng/sqlhelper/blame"
	"github.com/abhissng/sqlhelper/connection"
)

// Registry maps configured provider names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]connection.Factory
}

// NewRegistry returns a registry holding the built-in factories.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]connection.Factory)}
	r.Register("mysql", &MySQLFactory{})
	r.Register("postgres", &PostgresFactory{})
	r.Register("postgresql", &PostgresFactory{})
	r.Register("pgx", &PostgresFactory{})
	r.Register("pq", &PQFactory{})
	r.Register("sqlite", &SQLiteFactory{})
	r.Register("sqlite3", &SQLiteFactory{})
	return r
}

// Register adds or replaces the factory stored under name. Names are case-insensitive.
func (r *Registry) Register(name string, factory connection.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[strings.ToLower(name)] = factory
}

// FactoryFor returns the factory registered under name. A dotted name that is
// not registered, such as "System.Data.SqlClient.SqlClientFactory", is treated
// as a type signature so provider detection still applies.
func (r *Registry) FactoryFor(name string) (connection.Factory, error) {
	r.mu.RLock()
	factory, ok := r.factories[strings.ToLower(strings.TrimSpace(name))]
	r.mu.RUnlock()
	if ok {
		return factory, nil
	}
	if strings.Contains(name, ".") {
		return connection.NamedFactory(name), nil
	}
	return nil, blame.UnknownProviderError(name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
