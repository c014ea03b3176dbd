// Package config resolves dagview's runtime configuration: defaults, an
// optional config file, and command-line flags, bound together through
// viper the way jscan's internal/config package does.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds every setting the decompose command needs.
type Config struct {
	// MinSimilarity overrides powergraph.MinSimilarity for experimentation.
	MinSimilarity float64 `mapstructure:"min_similarity" yaml:"min_similarity"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// OutputPath is where the decomposition result is written. Empty means
	// stdout.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`

	// Pretty indents the JSON output.
	Pretty bool `mapstructure:"pretty" yaml:"pretty"`

	// Progress enables a terminal progress bar across phases A-D.
	Progress bool `mapstructure:"progress" yaml:"progress"`
}

const (
	defaultMinSimilarity = 0.25
	defaultLogLevel      = "info"
)

// Load builds a Config from defaults, an optional config file at path (""
// skips file loading), and environment variables prefixed DAGVIEW_. Flags
// are bound by the caller via v.BindPFlag before Load runs, so cobra flag
// values take precedence over both the file and the defaults.
func Load(v *viper.Viper, path string) (*Config, error) {
	v.SetDefault("min_similarity", defaultMinSimilarity)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("output_path", "")
	v.SetDefault("pretty", false)
	v.SetDefault("progress", false)

	v.SetEnvPrefix("dagview")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("config: %w", err)
			}
			if _, statErr := os.Stat(path); statErr == nil {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
