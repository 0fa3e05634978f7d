package connection

// Source is the configuration capability the resolver reads named connection strings from.
// The bool reports whether an entry exists; a present empty string is still a value.
type Source interface {
	GetConnectionString(name string) (string, bool)
}

// MapSource is an in-memory Source keyed by connection name.
type MapSource map[string]string

// GetConnectionString returns the entry stored under name.
func (m MapSource) GetConnectionString(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}
