package connection

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/jackc/pgx/v5/pgconn"
)

// CatalogExtractor pulls a database name out of a connection string, "" when it finds none.
type CatalogExtractor func(connectionString string) string

var (
	initialCatalogRegex = regexp.MustCompile(constant.InitialCatalogRegex)
	secretPairRegex     = regexp.MustCompile(constant.SecretPairRegex)
	userInfoSecretRegex = regexp.MustCompile(constant.UserInfoSecretRegex)
)

// InitialCatalog returns the first capture of `Initial Catalog=([^;]*)`.
func InitialCatalog(connectionString string) string {
	if matches := initialCatalogRegex.FindStringSubmatch(connectionString); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// PostgresDatabase returns the database of a libpq keyword/value or URL connection string.
// Parsing goes through pgconn.ParseConfig, which fills settings the string omits the
// way libpq does: from PG* environment variables such as PGDATABASE, and from the
// pg_service.conf and .pgpass files they point at. A string that names its database
// always wins over those sources. An unparseable string yields "".
func PostgresDatabase(connectionString string) string {
	cfg, err := pgconn.ParseConfig(connectionString)
	if err != nil {
		return ""
	}
	return cfg.Database
}

// Redact masks passwords so a connection string can be logged or printed.
func Redact(connectionString string) string {
	if strings.Contains(connectionString, "://") {
		if u, err := url.Parse(connectionString); err == nil {
			return u.Redacted()
		}
	}
	redacted := userInfoSecretRegex.ReplaceAllString(connectionString, "${1}"+constant.RedactedValue+"${3}")
	return secretPairRegex.ReplaceAllString(redacted, "${1}"+constant.RedactedValue)
}
