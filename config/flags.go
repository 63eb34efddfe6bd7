// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName = "marblebag"

	defaultMetricsNamespace = "marblebag"
)

// BuildFlagSet returns the complete set of flags for configuring a bag
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)

	fs.String(ConfigFileKey, "", "Specifies a config file. JSON and YAML are supported")

	// Bag
	fs.StringSlice(CategoriesKey, nil, "Ordered list of unique categories. Draw order follows this order")
	fs.IntSlice(CountsKey, nil, "Initial number of items in each category. Must be the same length as categories")
	fs.Uint64(SeedKey, 0, "Seed for the random source. If unset, the source is seeded from the clock")
	fs.Bool(SynchronizedKey, false, "If true, serialize every bag operation behind a single lock")

	// Metrics
	fs.Bool(MetricsEnabledKey, true, "If true, report bag operations to the metrics registry")
	fs.String(MetricsNamespaceKey, defaultMetricsNamespace, "Namespace of the reported metrics")

	// Logging
	fs.String(LogLevelKey, "info", "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "plain", "The structure of log format. Should be one of {plain, json}")

	return fs
}

// BuildViper parses [args] with [fs] and returns the resulting viper
// environment, including the contents of the config file if one was provided.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
