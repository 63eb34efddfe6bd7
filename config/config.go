// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ava-labs/marblebag/bag"
	"github.com/ava-labs/marblebag/utils/logging"
	"github.com/ava-labs/marblebag/utils/sampler"
)

var errNoRegisterer = errors.New("metrics are enabled but no registerer was provided")

// Config describes how to build a bag of string categories.
type Config struct {
	Categories []string
	Counts     []uint64

	// Seed makes every draw reproducible when non-nil.
	Seed         *uint64
	Synchronized bool

	MetricsEnabled   bool
	MetricsNamespace string

	LogLevel  logging.Level
	LogFormat logging.Format
}

// GetConfig reads and validates the bag configuration defined in [v].
func GetConfig(v *viper.Viper) (Config, error) {
	config := Config{
		Categories:       v.GetStringSlice(CategoriesKey),
		Synchronized:     v.GetBool(SynchronizedKey),
		MetricsEnabled:   v.GetBool(MetricsEnabledKey),
		MetricsNamespace: v.GetString(MetricsNamespaceKey),
	}

	rawCounts := v.GetIntSlice(CountsKey)
	if len(rawCounts) != len(config.Categories) {
		return Config{}, fmt.Errorf("%w: %q has %d entries but %q has %d",
			bag.ErrInvalidInput,
			CategoriesKey,
			len(config.Categories),
			CountsKey,
			len(rawCounts),
		)
	}
	config.Counts = make([]uint64, len(rawCounts))
	for i, count := range rawCounts {
		if count < 0 {
			return Config{}, fmt.Errorf("%w: category %q has negative count %d",
				bag.ErrInvalidInput,
				config.Categories[i],
				count,
			)
		}
		config.Counts[i] = uint64(count)
	}

	if v.IsSet(SeedKey) {
		seed := v.GetUint64(SeedKey)
		config.Seed = &seed
	}

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("couldn't parse %q: %w", LogLevelKey, err)
	}
	config.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	if err != nil {
		return Config{}, fmt.Errorf("couldn't parse %q: %w", LogFormatKey, err)
	}
	return config, nil
}

// NewLogger returns a logger that writes to stdout at the configured level and
// format.
func (c Config) NewLogger() logging.Logger {
	return logging.NewLogger(
		appName,
		logging.NewWrappedCore(c.LogLevel, os.Stdout, c.LogFormat.Encoder()),
	)
}

// BuildBag returns the bag described by [c]. The bag is wrapped with a lock if
// [c.Synchronized] and reports to [registerer] if [c.MetricsEnabled].
func (c Config) BuildBag(log logging.Logger, registerer prometheus.Registerer) (bag.Interface[string], error) {
	if log == nil {
		log = logging.NoLog{}
	}

	uniform := sampler.NewUniform()
	if c.Seed != nil {
		uniform = sampler.NewDeterministicUniform(sampler.NewSource(*c.Seed))
	}

	b, err := bag.New(uniform, log, c.Categories, c.Counts)
	if err != nil {
		return nil, err
	}

	var result bag.Interface[string] = b
	if c.Synchronized {
		result = bag.NewLocked(result)
	}
	if c.MetricsEnabled {
		if registerer == nil {
			return nil, errNoRegisterer
		}
		result, err = bag.NewMetered(c.MetricsNamespace, registerer, result)
		if err != nil {
			return nil, fmt.Errorf("couldn't register bag metrics: %w", err)
		}
	}

	log.Info("built bag",
		zap.Strings("categories", c.Categories),
		zap.Uint64s("counts", c.Counts),
		zap.Uint64("total", result.Total()),
		zap.Bool("seeded", c.Seed != nil),
		zap.Bool("synchronized", c.Synchronized),
	)
	return result, nil
}
