package viper

import (
	"fmt"
	"strings"

	"github.com/abhissng/sqlhelper/blame"
	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/abhissng/sqlhelper/utils/helpers"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Viper holds the configuration for one viper instance. It is a connection.Source:
// connection strings are read from the "ConnectionStrings" section.
type Viper struct {
	configName string
	configType string
	configPath string // it should only contain the absolute path for the folder, the environment folder is added here
	v          *viper.Viper
}

// NewViper creates the viper configuration using the RUN_MODE / ENVIRONMENT environment.
// Files are looked up in configPath/<env>/ where env defaults to "dev".
func NewViper(configName, configType, configPath string) *Viper {
	env := helpers.GetEnvironmentSlug(helpers.GetEnvironment())
	configPath = strings.TrimSuffix(configPath, "/")

	return &Viper{
		configName: configName,
		configType: configType,
		configPath: configPath + "/" + env + "/",
		v:          newInstance(),
	}
}

func newInstance() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Enable Viper to read environment variables, CONNECTIONSTRINGS_SALES overrides ConnectionStrings.Sales
	v.AutomaticEnv()
	return v
}

// ConfigPath returns the folder the configuration file is read from.
func (v *Viper) ConfigPath() string {
	return v.configPath
}

// Instance returns the underlying viper instance.
func (v *Viper) Instance() *viper.Viper {
	return v.v
}

// InitialiseViper reads the configuration file.
func (v *Viper) InitialiseViper() error {
	v.v.SetConfigName(v.configName)
	v.v.SetConfigType(v.configType)
	v.v.AddConfigPath(v.configPath)

	if err := v.v.ReadInConfig(); err != nil {
		return blame.ConfigLoadError(v.configPath+v.configName, err)
	}
	return nil
}

// GetConnectionString returns ConnectionStrings.<name>. Lookups are case-insensitive.
func (v *Viper) GetConnectionString(name string) (string, bool) {
	key := constant.ConnectionStringsKey + "." + name
	if !v.v.IsSet(key) {
		return "", false
	}
	return v.v.GetString(key), true
}

// UnmarshalConfig unmarshals the entire configuration into target. Strings are
// decoded into encoding.TextUnmarshaler fields such as connection.Provider.
//
// Example:
//
//	type AppConfig struct {
//	    Connections map[string]struct {
//	        Provider string               `mapstructure:"provider"`
//	        Kind     *connection.Provider `mapstructure:"kind"`
//	    } `mapstructure:"connections"`
//	}
func UnmarshalConfig[T any](v *Viper, target *T) error {
	if target == nil {
		return fmt.Errorf("target struct cannot be nil")
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.v.Unmarshal(target, hook); err != nil {
		return blame.ConfigLoadError(v.configPath+v.configName, err)
	}
	return nil
}
