// Package config loads the ambient settings layer: defaults for the output
// root and the synchronous-execution switch, overridable by a
// winrtgen.yaml/.winrtgen.yaml file in the working directory or by
// WINRTGEN_-prefixed environment variables. It never supplies include or
// exclude prefixes — those come exclusively from -include/-exclude/-config,
// kept separate in internal/filter.
package config

import (
	"github.com/spf13/viper"

	gerrors "github.com/cppwinrt-go/cppwinrt/internal/errors"
)

// Settings is the ambient configuration winrtgen reads before flags are
// applied; flags always win when both are set.
type Settings struct {
	Output      string `mapstructure:"output"`
	Synchronous bool   `mapstructure:"synchronous"`
}

// LoadDefaults reads winrtgen.yaml or .winrtgen.yaml from the current
// directory, if present, falling back to built-in defaults when neither
// exists. A malformed config file is a ConfigError.
func LoadDefaults() (*Settings, error) {
	v := viper.New()
	v.SetDefault("output", ".")
	v.SetDefault("synchronous", false)

	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("WINRTGEN")
	v.AutomaticEnv()

	for _, name := range []string{"winrtgen", ".winrtgen"} {
		v.SetConfigName(name)
		if err := v.ReadInConfig(); err == nil {
			break
		} else if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, gerrors.Wrap(gerrors.Config, "failed to read settings file", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, gerrors.Wrap(gerrors.Config, "failed to unmarshal settings", err)
	}
	return &s, nil
}
