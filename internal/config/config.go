// Package config loads kartgen settings from .kartgen.yaml, KARTGEN_* env
// vars and CLI flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"kartgen/internal/gen"
)

// GenerateConfig holds the names used in generated C++ code.
type GenerateConfig struct {
	Align               bool   `mapstructure:"align"`
	CharacteristicClass string `mapstructure:"characteristic_class"`
	PropertiesClass     string `mapstructure:"properties_class"`
	CacheMember         string `mapstructure:"cache_member"`
	ValuesMember        string `mapstructure:"values_member"`
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration for a kartgen run.
type Config struct {
	// SourceDir is the root the target files are relative to.
	SourceDir string `mapstructure:"source_dir"`
	// SchemaFile is the characteristics list; empty uses the built-in one.
	SchemaFile string            `mapstructure:"schema_file"`
	Verbose    bool              `mapstructure:"verbose"`
	Generate   GenerateConfig    `mapstructure:"generate"`
	Targets    map[string]string `mapstructure:"targets"`
	Watch      WatchConfig       `mapstructure:"watch"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	defaults := gen.DefaultOptions()

	viper.SetDefault("source_dir", "src")
	viper.SetDefault("schema_file", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("generate.align", false)
	viper.SetDefault("generate.characteristic_class", defaults.CharacteristicClass)
	viper.SetDefault("generate.properties_class", defaults.PropertiesClass)
	viper.SetDefault("generate.cache_member", defaults.CacheMember)
	viper.SetDefault("generate.values_member", defaults.ValuesMember)
	viper.SetDefault("targets", map[string]string{})
	viper.SetDefault("watch.debounce", 200*time.Millisecond)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Targets = canonicalTargets(cfg.Targets)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// canonicalTargets restores operation name casing in target keys, which
// viper folds to lower case. Unknown keys are kept for the planner to report.
func canonicalTargets(targets map[string]string) map[string]string {
	out := make(map[string]string, len(targets))

	for key, path := range targets {
		for _, op := range gen.Operations() {
			if strings.EqualFold(key, op.String()) {
				key = op.String()
				break
			}
		}

		out[key] = path
	}

	return out
}

func (c Config) validate() error {
	var errs []error

	if c.SourceDir == "" {
		errs = append(errs, errors.New("source_dir must not be empty"))
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce))
	}

	return errors.Join(errs...)
}

// ProjectionOptions returns the rendering options described by the config.
func (c Config) ProjectionOptions() gen.Options {
	return gen.Options{
		Align:               c.Generate.Align,
		CharacteristicClass: c.Generate.CharacteristicClass,
		PropertiesClass:     c.Generate.PropertiesClass,
		CacheMember:         c.Generate.CacheMember,
		ValuesMember:        c.Generate.ValuesMember,
	}
}
