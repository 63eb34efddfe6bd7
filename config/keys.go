// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey       = "config-file"
	CategoriesKey       = "categories"
	CountsKey           = "counts"
	SeedKey             = "seed"
	SynchronizedKey     = "synchronized"
	MetricsEnabledKey   = "metrics-enabled"
	MetricsNamespaceKey = "metrics-namespace"
	LogLevelKey         = "log-level"
	LogFormatKey        = "log-format"
)
