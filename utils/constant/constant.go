package constant

// These are general constant for config file and environment
const (
	Service            = "Service"
	Environment        = "ENVIRONMENT"
	RunMode            = "RUN_MODE"
	LogRotationEnabled = "LOG_ROTATION_ENABLED"
	LogFilePath        = "LOG_FILE_PATH"
	DefaultEnvironment = "dev"
	DefaultServiceName = "sqlhelper"
)

// Configuration keys understood by the viper adapter.
const (
	ConnectionStringsKey = "connectionstrings"
	ConnectionsKey       = "connections"
)
