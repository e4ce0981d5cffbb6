// Package config holds the configuration of the devrand command line tools.
// Values are resolved in order from CLI flags, DEVRAND_ prefixed environment
// variables, an optional config file, and the defaults below.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// All constant strings are used for CLI flag names and corresponding keys for config values.
	seed        = "seed"
	deviceID    = "device"
	logLevel    = "loglevel"
	metricsPort = "metrics-port"
	configFile  = "config"

	envPrefix = "DEVRAND"
)

// Config is the configuration of the sampler exposed by the CLI.
type Config struct {
	// Seed is the hex encoded seed of the active device state. Empty means the
	// state is seeded from system entropy.
	Seed string `validate:"omitempty,hexadecimal" mapstructure:"seed"`
	// Device is the device the draws are made on.
	Device int `validate:"gte=0" mapstructure:"device"`
	// LogLevel is the minimum level of emitted logs.
	LogLevel string `validate:"oneof=trace debug info warn error fatal panic disabled" mapstructure:"loglevel"`
	// MetricsPort is the port the prometheus metrics are served on, 0 disables the server.
	MetricsPort uint `validate:"lte=65535" mapstructure:"metrics-port"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Seed:        "",
		Device:      0,
		LogLevel:    "info",
		MetricsPort: 0,
	}
}

// InitializeFlags initializes all CLI flags of the configuration on the provided pflag set.
// Args:
//
//	*pflag.FlagSet: the pflag set of the command.
//	*Config: the default config used to set default values on the flags
func InitializeFlags(flags *pflag.FlagSet, config *Config) {
	flags.String(seed, config.Seed, "hex encoded seed of the active device, system entropy if empty")
	flags.Int(deviceID, config.Device, "identifier of the device the values are drawn on")
	flags.String(logLevel, config.LogLevel, "level for logging output")
	flags.Uint(metricsPort, config.MetricsPort, "port of the prometheus metrics server, 0 to disable it")
	flags.String(configFile, "", "path of an optional config file")
}

// Load resolves the configuration from the viper store, which is expected to
// have the flags of InitializeFlags bound. The result is validated.
func Load(v *viper.Viper) (*Config, error) {
	defaults := DefaultConfig()
	v.SetDefault(seed, defaults.Seed)
	v.SetDefault(deviceID, defaults.Device)
	v.SetDefault(logLevel, defaults.LogLevel)
	v.SetDefault(metricsPort, defaults.MetricsPort)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(configFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every field of the configuration. All invalid fields are
// reported together.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("could not validate config: %w", err)
	}
	var errs *multierror.Error
	for _, fieldErr := range fieldErrs {
		errs = multierror.Append(errs, NewInvalidConfigErrorf("field %s=%v fails the %q constraint", fieldErr.Field(), fieldErr.Value(), fieldErr.Tag()))
	}
	return errs.ErrorOrNil()
}

// SeedBytes decodes the seed. A nil slice means no seed was configured.
func (c *Config) SeedBytes() ([]byte, error) {
	if c.Seed == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(strings.TrimPrefix(c.Seed, "0x"))
	if err != nil {
		return nil, NewInvalidConfigErrorf("seed is not valid hex: %w", err)
	}
	return b, nil
}

// ParseLogLevel returns the zerolog level of the configuration.
func (c *Config) ParseLogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, NewInvalidConfigErrorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// InvalidConfigError indicates a configuration value that cannot be used.
type InvalidConfigError struct {
	err error
}

func NewInvalidConfigErrorf(msg string, args ...interface{}) InvalidConfigError {
	return InvalidConfigError{
		err: fmt.Errorf(msg, args...),
	}
}

func (e InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.err.Error())
}

func (e InvalidConfigError) Unwrap() error {
	return e.err
}

// IsInvalidConfigError returns whether err is an InvalidConfigError
func IsInvalidConfigError(err error) bool {
	var e InvalidConfigError
	return errors.As(err, &e)
}
