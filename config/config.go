// Package config is for app-wide settings unmarshalled from Viper (see: /cmd).
package config

import (
	"log"

	"github.com/spf13/viper"
)

// ThreadConfig mirrors poa.ThreadParams for CLI/YAML configuration.
type ThreadConfig struct {
	Match    float64 `mapstructure:"match"`
	Mismatch float64 `mapstructure:"mismatch"`
	Delete   float64 `mapstructure:"delete"`
	Extra    float64 `mapstructure:"extra"`
}

// SNRConfig mirrors model.SNR.
type SNRConfig struct {
	A float64 `mapstructure:"a"`
	C float64 `mapstructure:"c"`
	G float64 `mapstructure:"g"`
	T float64 `mapstructure:"t"`
}

// EvalConfig groups the settings the eval/polish subcommands need.
type EvalConfig struct {
	ModelID              string  `mapstructure:"model"`
	SNR                  SNRConfig `mapstructure:"snr"`
	ImprovementThreshold float64 `mapstructure:"improvement-threshold"`
	MaxRounds            int     `mapstructure:"max-rounds"`
}

// Config is the root-level settings struct, read from a local poadiag.yaml
// (or the file named by --config); no command-line flag is bound to it.
type Config struct {
	Mode   string       `mapstructure:"mode"`
	Thread ThreadConfig `mapstructure:"thread"`
	Eval   EvalConfig   `mapstructure:"eval"`
}

// Defaults matches poa.DefaultThreadParams and a conservative polishing
// threshold, used before any flags/YAML override them.
func Defaults() Config {
	return Config{
		Mode: "global",
		Thread: ThreadConfig{
			Match:    2,
			Mismatch: -1,
			Delete:   -2,
			Extra:    -2,
		},
		Eval: EvalConfig{
			ModelID:              "P6/C4",
			ImprovementThreshold: 0,
			MaxRounds:            50,
		},
	}
}

// NewConfig returns a Config populated from Viper (any poadiag.yaml found on
// the search path, or the --config file), layered over Defaults.
func NewConfig() Config {
	c := Defaults()
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("config: unable to decode into struct: %v", err)
	}
	return c
}
