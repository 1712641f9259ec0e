package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// runConfig holds every knob a pathbench invocation needs, whether it
// came from a flag, a config file, or an environment variable — viper
// resolves the precedence (flag > env > file > default).
type runConfig struct {
	GraphFile string  `mapstructure:"graph"`
	Source    string  `mapstructure:"source"`
	Target    string  `mapstructure:"target"`
	Variant   string  `mapstructure:"variant"`
	Skew      float64 `mapstructure:"skew"`
}

// loadConfig builds a runConfig from (in ascending precedence) defaults,
// an optional config file, environment variables prefixed PATHBENCH_, and
// the already-bound cobra flags on v.
func loadConfig(v *viper.Viper, configPath string) (*runConfig, error) {
	v.SetDefault("variant", "binary")
	v.SetDefault("skew", 0.5)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("pathbench: reading config file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "pathbench: config file %s not found, using defaults\n", configPath)
		}
	}

	v.SetEnvPrefix("PATHBENCH")
	v.AutomaticEnv()

	var cfg runConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("pathbench: unmarshaling config: %w", err)
	}
	return &cfg, nil
}
