package constant

const (
	// Regular expression for the ADO.NET catalog key: "Server=x;Initial Catalog=Sales;"
	InitialCatalogRegex = `Initial Catalog=([^;]*)`

	// Matches secret-bearing key/value pairs inside a key=value connection string.
	SecretPairRegex = `(?i)((?:^|;)\s*(?:password|pwd)\s*=)([^;]*)`
)

// Matches the password of a driver DSN such as "user:password@tcp(host:3306)/dbname".
// The password runs to the last "@" before the address, which may itself contain "@".
const UserInfoSecretRegex = `^([^:@/;=]+:)(.*)(@[a-z0-9]*(?:\([^)]*\))?/)`
