// Package config defines the server's layered configuration (flags > env >
// file), grounded on junjiewwang-perf-analysis's cmd/cli/cmd/root.go
// cobra-flag-bound-into-viper pattern and its pkg/config/config.go
// Load (--config file resolution, swallowing a missing file rather than
// failing, since every value also has a flag default).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds every knob the process bootstrap needs.
type Config struct {
	Addr      string
	LogLevel  string
	LogPretty bool
}

const (
	keyAddr      = "addr"
	keyLogLevel  = "log-level"
	keyLogPretty = "log-pretty"
	keyConfig    = "config"
)

// BindFlags registers the CLI flags on cmd and binds them into v, with the
// RSHEETS_ environment prefix and an optional --config file taking over for
// any flag left at its default, per §6's "flags > env > file" precedence.
func BindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().String(keyConfig, "", "path to a YAML/JSON/TOML config file")
	cmd.PersistentFlags().String(keyAddr, ":2323", "address to listen on")
	cmd.PersistentFlags().String(keyLogLevel, "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool(keyLogPretty, false, "write console-friendly logs instead of JSON")

	v.SetEnvPrefix("RSHEETS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	_ = v.BindPFlag(keyConfig, cmd.PersistentFlags().Lookup(keyConfig))
	_ = v.BindPFlag(keyAddr, cmd.PersistentFlags().Lookup(keyAddr))
	_ = v.BindPFlag(keyLogLevel, cmd.PersistentFlags().Lookup(keyLogLevel))
	_ = v.BindPFlag(keyLogPretty, cmd.PersistentFlags().Lookup(keyLogPretty))
}

// Load reads an optional config file into v (flags and env set above still
// take precedence over anything it supplies), then returns the merged
// Config. When --config is omitted, finding no rsheets.<ext> in the search
// paths is not an error: viper's defaults/flags/env alone are a valid
// configuration. An explicit --config path that cannot be read is an error.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rsheets")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/rsheets")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	return Config{
		Addr:      v.GetString(keyAddr),
		LogLevel:  v.GetString(keyLogLevel),
		LogPretty: v.GetBool(keyLogPretty),
	}, nil
}
