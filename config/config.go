// Package config loads settings for the command line tools.
//
// Settings come, in increasing priority, from defaults, an optional YAML
// config file, LAMC_* environment variables and command line flags bound to
// the same viper instance.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Normalization forms applied to source text before parsing.
const (
	NormNone = "none"
	NormNFC  = "nfc"
	NormNFKC = "nfkc"
)

// Keys of settings within viper.
const (
	KeyFormat    = "format"
	KeyStrict    = "strict"
	KeyWorkers   = "workers"
	KeyNormalize = "normalize"
	KeyVerbose   = "verbose"
	KeyHistory   = "history"
)

// EnvPrefix is the prefix of environment variables, e.g., LAMC_FORMAT.
const EnvPrefix = "LAMC"

// Config holds all settings.
type Config struct {
	Format    string `mapstructure:"format"`
	Strict    bool   `mapstructure:"strict"`
	Workers   int    `mapstructure:"workers"`
	Normalize string `mapstructure:"normalize"`
	Verbose   bool   `mapstructure:"verbose"`
	History   string `mapstructure:"history"`
}

// SetDefaults registers default values and environment lookup in v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormat, FormatText)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyNormalize, NormNFC)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyHistory, "")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file at path, if not empty, and decodes all settings
// from v.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Normalize = strings.ToLower(cfg.Normalize)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that all settings have acceptable values.
func (cfg *Config) Validate() error {
	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q (must be %s, %s or %s)", cfg.Format, FormatText, FormatJSON, FormatYAML)
	}
	switch cfg.Normalize {
	case NormNone, NormNFC, NormNFKC:
	default:
		return fmt.Errorf("invalid normalization %q (must be %s, %s or %s)", cfg.Normalize, NormNone, NormNFC, NormNFKC)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("invalid number of workers %d (must be positive)", cfg.Workers)
	}
	return nil
}
