package connection

import (
	"strings"

	"github.com/abhissng/sqlhelper/blame"
)

// Provider identifies a database provider family.
type Provider int

const (
	Generic Provider = iota
	MySQL
	Oracle
	SQLServer
	PostgreSQL
	SQLite
)

var providerNames = map[Provider]string{
	Generic:    "generic",
	MySQL:      "mysql",
	Oracle:     "oracle",
	SQLServer:  "sqlserver",
	PostgreSQL: "postgres",
	SQLite:     "sqlite",
}

var providerAliases = map[string]Provider{
	"generic":    Generic,
	"":           Generic,
	"mysql":      MySQL,
	"mariadb":    MySQL,
	"oracle":     Oracle,
	"sqlserver":  SQLServer,
	"mssql":      SQLServer,
	"sqlclient":  SQLServer,
	"postgres":   PostgreSQL,
	"postgresql": PostgreSQL,
	"pg":         PostgreSQL,
	"pgx":        PostgreSQL,
	"sqlite":     SQLite,
	"sqlite3":    SQLite,
}

// Providers returns every known provider in declaration order.
func Providers() []Provider {
	return []Provider{Generic, MySQL, Oracle, SQLServer, PostgreSQL, SQLite}
}

// CatalogOnExplicitPrefix reports whether the database name is still extracted
// when the caller supplies a prefix.
func (p Provider) CatalogOnExplicitPrefix() bool {
	return ruleFor(p).catalogOnExplicit
}

// CatalogOnDefaultPrefix reports whether the database name is extracted when
// the prefix is inferred.
func (p Provider) CatalogOnDefaultPrefix() bool {
	return ruleFor(p).catalogOnDefault
}

// String returns the canonical lower-case name of the provider.
func (p Provider) String() string {
	if name, ok := providerNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseProvider maps a provider name or alias, case-insensitively, to a Provider.
func ParseProvider(name string) (Provider, error) {
	if p, ok := providerAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return Generic, blame.UnknownProviderError(name)
}

// MarshalText implements encoding.TextMarshaler.
func (p Provider) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Provider) UnmarshalText(text []byte) error {
	parsed, err := ParseProvider(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// rule is what a provider contributes to a resolved Connection.
type rule struct {
	defaultPrefix string
	// catalogOnDefault extracts the database name when the caller left the prefix empty.
	catalogOnDefault bool
	// catalogOnExplicit extracts it when the caller supplied a prefix.
	catalogOnExplicit bool
	catalog           CatalogExtractor
}

var rules = map[Provider]rule{
	Generic:    {defaultPrefix: "@", catalogOnDefault: true, catalog: InitialCatalog},
	SQLServer:  {defaultPrefix: "@", catalogOnDefault: true, catalogOnExplicit: true, catalog: InitialCatalog},
	MySQL:      {defaultPrefix: "?", catalog: InitialCatalog},
	Oracle:     {defaultPrefix: ":", catalog: InitialCatalog},
	PostgreSQL: {defaultPrefix: "$", catalogOnDefault: true, catalogOnExplicit: true, catalog: PostgresDatabase},
	SQLite:     {defaultPrefix: "@", catalog: InitialCatalog},
}

func ruleFor(p Provider) rule {
	if r, ok := rules[p]; ok {
		return r
	}
	return rules[Generic]
}

// DefaultPrefix returns the parameter prefix used when none is supplied.
func (p Provider) DefaultPrefix() string {
	return ruleFor(p).defaultPrefix
}

// Signature is the outcome of inspecting a factory.
type Signature struct {
	Provider Provider
	// SQLClient is set when the signature belongs to the SqlClient family. It alone
	// decides database name extraction for an explicit prefix, so
	// "MySql.Data.MySqlClient.MySqlClientFactory" is MySQL yet still extracts.
	SQLClient bool
}

var signatureMarkers = []struct {
	marker   string
	provider Provider
}{
	{marker: "MySql", provider: MySQL},
	{marker: "Oracle", provider: Oracle},
	{marker: "SqlClient", provider: SQLServer},
}

// DetectProvider infers the provider from a factory type signature.
// Markers are case-sensitive and checked in order; no marker means Generic.
func DetectProvider(typeName string) Signature {
	sig := Signature{
		Provider:  Generic,
		SQLClient: strings.Contains(typeName, "SqlClient"),
	}
	for _, m := range signatureMarkers {
		if strings.Contains(typeName, m.marker) {
			sig.Provider = m.provider
			break
		}
	}
	return sig
}

// SignatureFor builds the Signature of a declared provider.
func SignatureFor(p Provider) Signature {
	return Signature{Provider: p, SQLClient: ruleFor(p).catalogOnExplicit}
}

// resolvePrefix applies the provider rules to the caller supplied prefix.
func resolvePrefix(sig Signature, parameterPrefix, connectionString string) (prefix, databaseName string) {
	r := ruleFor(sig.Provider)
	if parameterPrefix == "" {
		if r.catalogOnDefault {
			databaseName = r.catalog(connectionString)
		}
		return r.defaultPrefix, databaseName
	}
	if sig.SQLClient {
		databaseName = r.catalog(connectionString)
	}
	return parameterPrefix, databaseName
}
