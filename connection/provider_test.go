package connection_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhissng/sqlhelper/blame"
	"github.com/abhissng/sqlhelper/connection"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		typeName  string
		provider  connection.Provider
		sqlClient bool
	}{
		{typeName: "System.Data.SqlClient.SqlClientFactory", provider: connection.SQLServer, sqlClient: true},
		{typeName: "Microsoft.Data.SqlClient.SqlClientFactory", provider: connection.SQLServer, sqlClient: true},
		{typeName: "MySql.Data.MySqlClient.MySqlClientFactory", provider: connection.MySQL, sqlClient: true},
		{typeName: "MySqlConnector.MySqlConnectorFactory", provider: connection.MySQL},
		{typeName: "Oracle.ManagedDataAccess.Client.OracleClientFactory", provider: connection.Oracle},
		{typeName: "Npgsql.NpgsqlFactory", provider: connection.Generic},
		{typeName: "mysql.MySQLDriver", provider: connection.Generic},
		{typeName: "", provider: connection.Generic},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			sig := connection.DetectProvider(tt.typeName)
			assert.Equal(t, tt.provider, sig.Provider)
			assert.Equal(t, tt.sqlClient, sig.SQLClient)
		})
	}
}

func TestParseProvider(t *testing.T) {
	for name, want := range map[string]connection.Provider{
		"MySQL":      connection.MySQL,
		"mssql":      connection.SQLServer,
		" Postgres ": connection.PostgreSQL,
		"sqlite3":    connection.SQLite,
		"oracle":     connection.Oracle,
		"":           connection.Generic,
	} {
		got, err := connection.ParseProvider(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := connection.ParseProvider("db2")
	assert.ErrorIs(t, err, blame.ErrProviderUnknown)
}

func TestProviderText(t *testing.T) {
	var decoded struct {
		Kind connection.Provider `json:"kind"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"pg"}`), &decoded))
	assert.Equal(t, connection.PostgreSQL, decoded.Kind)

	out, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"postgres"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"db2"}`), &decoded))
	assert.Equal(t, "unknown", connection.Provider(99).String())
}

func TestDefaultPrefix(t *testing.T) {
	assert.Equal(t, "@", connection.Generic.DefaultPrefix())
	assert.Equal(t, "@", connection.SQLServer.DefaultPrefix())
	assert.Equal(t, "?", connection.MySQL.DefaultPrefix())
	assert.Equal(t, ":", connection.Oracle.DefaultPrefix())
	assert.Equal(t, "$", connection.PostgreSQL.DefaultPrefix())
	assert.Equal(t, "@", connection.Provider(99).DefaultPrefix())
}

func TestProviderRules(t *testing.T) {
	assert.Len(t, connection.Providers(), 6)

	for _, p := range []connection.Provider{connection.SQLServer, connection.PostgreSQL} {
		assert.True(t, p.CatalogOnDefaultPrefix(), p.String())
		assert.True(t, p.CatalogOnExplicitPrefix(), p.String())
	}
	assert.True(t, connection.Generic.CatalogOnDefaultPrefix())
	assert.False(t, connection.Generic.CatalogOnExplicitPrefix())
	for _, p := range []connection.Provider{connection.MySQL, connection.Oracle, connection.SQLite} {
		assert.False(t, p.CatalogOnDefaultPrefix(), p.String())
		assert.False(t, p.CatalogOnExplicitPrefix(), p.String())
	}
}
