package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhissng/sqlhelper/adapters/log"
	"github.com/abhissng/sqlhelper/adapters/viper"
	"github.com/abhissng/sqlhelper/connection"
	"github.com/abhissng/sqlhelper/database"
	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/abhissng/sqlhelper/utils/helpers"
)

const (
	flagConfigDir  = "config-dir"
	flagConfigName = "config-name"
	flagConfigType = "config-type"
	flagPrefix     = "prefix"
	flagConnection = "connection"
	flagProvider   = "provider"
	flagKind       = "kind"
	flagStrict     = "strict"
	flagJSON       = "json"
	flagYAML       = "yaml"
	flagLogLevel   = "log-level"
)

// descriptor is the printed form of a Connection. The connection string is redacted.
type descriptor struct {
	Name             string `json:"name" yaml:"name"`
	ConnectionString string `json:"connection_string" yaml:"connection_string"`
	ParameterPrefix  string `json:"parameter_prefix" yaml:"parameter_prefix"`
	SourceType       string `json:"source_type" yaml:"source_type"`
	DatabaseName     string `json:"database_name" yaml:"database_name"`
	Provider         string `json:"provider" yaml:"provider"`
}

func describe(c *connection.Connection) descriptor {
	return descriptor{
		Name:             c.Name(),
		ConnectionString: c.Redacted(),
		ParameterPrefix:  c.ParameterPrefix(),
		SourceType:       c.SourceType(),
		DatabaseName:     c.DatabaseName(),
		Provider:         c.Provider().String(),
	}
}

// NewRootCmd builds the sqlhelper command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sqlhelper",
		Short:         "Resolve named database connections from configuration",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().String(flagLogLevel, string(log.WarnLevel), "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(makeResolveCmd(), makeProvidersCmd())
	return rootCmd
}

func makeResolveCmd() *cobra.Command {
	resolveCmd := &cobra.Command{
		Use:   "resolve [name]",
		Short: "Print the descriptor of a named connection, or of every configured connection",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runResolve,
	}

	flags := resolveCmd.Flags()
	flags.String(flagConfigDir, "./config", "Folder holding the <env>/ configuration folders")
	flags.String(flagConfigName, "config", "Configuration file name without extension")
	flags.String(flagConfigType, "yaml", "Configuration file type")
	flags.String(flagPrefix, "", "Parameter prefix, inferred from the provider when empty")
	flags.String(flagConnection, "", "Explicit connection string, looked up by name when empty")
	flags.String(flagProvider, "", "Registry name (mysql, postgres, sqlite) or provider type signature")
	flags.String(flagKind, "", "Declare the provider kind instead of detecting it")
	flags.Bool(flagStrict, false, "Fail when the name is not configured")
	flags.Bool(flagJSON, false, "Print JSON")
	flags.Bool(flagYAML, false, "Print YAML")
	resolveCmd.MarkFlagsMutuallyExclusive(flagJSON, flagYAML)
	flags.Bool("all", false, "Resolve every entry under Connections")

	return resolveCmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	source := viper.NewViper(getFlagS(cmd, flagConfigName), getFlagS(cmd, flagConfigType), getFlagS(cmd, flagConfigDir))
	if err := source.InitialiseViper(); err != nil {
		logger.Error(constant.ConfigLoadFailed, log.Err(err))
		return err
	}
	logger.Debug(constant.ConfigLoaded, log.String("path", source.ConfigPath()))

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	var connections []*connection.Connection
	switch {
	case getFlagB(cmd, "all"):
		resolver, err := newResolver(cmd, source, logger)
		if err != nil {
			return err
		}
		if connections, err = resolver.ResolveAll(); err != nil {
			return err
		}

	case cmd.Flags().Changed(flagProvider) || cmd.Flags().Changed(flagConnection) ||
		cmd.Flags().Changed(flagPrefix) || cmd.Flags().Changed(flagKind):
		c, err := resolveExplicit(cmd, source, name, logger)
		if err != nil {
			return err
		}
		connections = append(connections, c)

	default:
		resolver, err := newResolver(cmd, source, logger)
		if err != nil {
			return err
		}
		c, err := resolver.Resolve(name)
		if err != nil {
			return err
		}
		connections = append(connections, c)
	}

	format := formatText
	switch {
	case getFlagB(cmd, flagJSON):
		format = formatJSON
	case getFlagB(cmd, flagYAML):
		format = formatYAML
	}
	return printDescriptors(cmd.OutOrStdout(), connections, format)
}

func newResolver(cmd *cobra.Command, source *viper.Viper, logger *log.Log) (*viper.Resolver, error) {
	opts := []viper.ResolverOption{viper.WithLogger(logger)}
	if getFlagB(cmd, flagStrict) {
		opts = append(opts, viper.WithStrict())
	}
	return viper.NewResolver(source, opts...)
}

// resolveExplicit builds the descriptor from the command line arguments with the
// configuration only used for the connection string lookup.
func resolveExplicit(cmd *cobra.Command, source *viper.Viper, name string, logger *log.Log) (*connection.Connection, error) {
	var factory connection.Factory
	if provider := getFlagS(cmd, flagProvider); provider != "" {
		f, err := database.NewRegistry().FactoryFor(provider)
		if err != nil {
			return nil, err
		}
		factory = f
	}

	opts := []connection.Option{connection.WithLogger(logger)}
	if kind := getFlagS(cmd, flagKind); kind != "" {
		p, err := connection.ParseProvider(kind)
		if err != nil {
			return nil, err
		}
		opts = append(opts, connection.WithProvider(p))
	}

	return connection.New(source, factory, getFlagS(cmd, flagConnection), name, getFlagS(cmd, flagPrefix), opts...)
}

type outputFormat int

const (
	formatText outputFormat = iota
	formatJSON
	formatYAML
)

func printDescriptors(out io.Writer, connections []*connection.Connection, format outputFormat) error {
	descriptors := make([]descriptor, 0, len(connections))
	for _, c := range connections {
		descriptors = append(descriptors, describe(c))
	}

	var value any = descriptors
	if len(descriptors) == 1 {
		value = descriptors[0]
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	}

	for i, d := range descriptors {
		if i > 0 {
			fmt.Fprintln(out)
		}
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.AppendRows([]table.Row{
			{"name", d.Name},
			{"connection string", d.ConnectionString},
			{"parameter prefix", d.ParameterPrefix},
			{"source type", d.SourceType},
			{"database name", d.DatabaseName},
			{"provider", d.Provider},
		})
		t.Render()
	}
	return nil
}

func makeProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the provider kinds, their prefixes and the registered factory names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.AppendHeader(table.Row{"Provider", "Prefix", "Catalog", "Catalog With Prefix"})
			for _, p := range connection.Providers() {
				t.AppendRow(table.Row{p, p.DefaultPrefix(), p.CatalogOnDefaultPrefix(), p.CatalogOnExplicitPrefix()})
			}
			t.Render()
			_, err := fmt.Fprintf(out, "\nfactories: %s\n", strings.Join(database.NewRegistry().Names(), ", "))
			return err
		},
	}
}

func newLogger(cmd *cobra.Command) (*log.Log, error) {
	level, err := cmd.Flags().GetString(flagLogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewLogger(log.NewLoggerConfig(helpers.IsProdEnvironment(),
		log.WithOutput(cmd.ErrOrStderr()),
		log.WithLevel(log.LogLevel(level)),
	))
}

func getFlagS(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(err.Error())
	}
	return val
}

func getFlagB(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(err.Error())
	}
	return val
}
