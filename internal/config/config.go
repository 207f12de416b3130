// Package config resolves pwstrength settings from defaults, an optional
// .pwstrength.yaml file, PWSTRENGTH_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/creativesar/Password-Strength-Checker/internal/log"
)

// Keys understood by viper.
const (
	KeyPolicy         = "policy"
	KeyOutput         = "output"
	KeyColor          = "color"
	KeyLogEnv         = "log.env"
	KeyGenerateLength = "generate.length"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

const (
	envPrefix  = "PWSTRENGTH"
	configName = ".pwstrength"
)

// envKeyReplacer maps nested keys such as log.env to PWSTRENGTH_LOG_ENV.
var envKeyReplacer = strings.NewReplacer(".", "_")

// Config is the resolved command configuration.
type Config struct {
	PolicyFile     string  // empty means the canonical policy
	Output         string  // OutputText or OutputJSON
	Color          bool    // colour text output
	LogEnv         log.Env // dev or prod
	GenerateLength int
	ConfigFile     string // file actually read, if any
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPolicy, "")
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyColor, true)
	v.SetDefault(KeyLogEnv, string(log.EnvDev))
	v.SetDefault(KeyGenerateLength, 16)
}

// Read points v at cfgFile, or searches $HOME and the working directory for
// .pwstrength.yaml, binds PWSTRENGTH_* environment variables and reads the
// file. A missing file is only an error when cfgFile was given explicitly.
func Read(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (Config, error) {
	env, err := log.ParseEnv(v.GetString(KeyLogEnv))
	if err != nil {
		return Config{}, err
	}
	c := Config{
		PolicyFile:     v.GetString(KeyPolicy),
		Output:         strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput))),
		Color:          v.GetBool(KeyColor),
		LogEnv:         env,
		GenerateLength: v.GetInt(KeyGenerateLength),
		ConfigFile:     v.ConfigFileUsed(),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects unknown output formats and impossible lengths.
func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %q or %q)", c.Output, OutputText, OutputJSON)
	}
	if c.GenerateLength <= 0 {
		return fmt.Errorf("generate length must be positive, got %d", c.GenerateLength)
	}
	return nil
}
