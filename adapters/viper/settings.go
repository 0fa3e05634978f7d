package viper

import (
	"strings"

	"github.com/abhissng/sqlhelper/adapters/validator"
	"github.com/abhissng/sqlhelper/blame"
	"github.com/abhissng/sqlhelper/connection"
	"github.com/abhissng/sqlhelper/utils/constant"
)

// Settings is the typed view of the configuration file.
//
//	ConnectionStrings:
//	  Sales: "Server=x;Initial Catalog=Sales;"
//	Connections:
//	  Sales:
//	    Provider: System.Data.SqlClient.SqlClientFactory
//	  Orders:
//	    Provider: mysql
//	    Host: localhost:3306
//	    Database: orders
type Settings struct {
	ConnectionStrings map[string]string             `mapstructure:"connectionstrings"`
	Connections       map[string]ConnectionSettings `mapstructure:"connections" validate:"dive"`
}

// ConnectionSettings declares how one named connection is resolved.
type ConnectionSettings struct {
	// Provider is a registry name (mysql, postgres, sqlite) or a provider type signature.
	Provider string `mapstructure:"provider" validate:"required"`
	// Kind overrides the provider the prefix rules are taken from.
	Kind             *connection.Provider `mapstructure:"kind"`
	Prefix           string               `mapstructure:"prefix" validate:"max=4"`
	ConnectionString string               `mapstructure:"connectionstring"`
	Host             string               `mapstructure:"host"`
	Database         string               `mapstructure:"database" validate:"required_with=Host"`
	User             string               `mapstructure:"user"`
	Password         string               `mapstructure:"password"`
	Options          map[string]string    `mapstructure:"options"`
}

// UnmarshalSettings decodes and validates Settings.
func (v *Viper) UnmarshalSettings() (*Settings, error) {
	settings := &Settings{}
	if err := UnmarshalConfig(v, settings); err != nil {
		return nil, err
	}

	if errs := validator.NewValidator().ValidateStruct(settings); len(errs) > 0 {
		return nil, blame.ConfigInvalidError(constant.ConnectionsKey, validator.Summarise(errs))
	}
	return settings, nil
}

// Connection returns the settings declared for name, case-insensitively.
func (s *Settings) Connection(name string) (ConnectionSettings, bool) {
	entry, ok := s.Connections[strings.ToLower(name)]
	return entry, ok
}
