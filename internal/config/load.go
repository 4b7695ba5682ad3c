package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. GOALBOARD_LOG_LEVEL.
const EnvPrefix = "GOALBOARD"

// Flag names registered by RegisterFlags.
const (
	FlagConfig           = "config"
	FlagLogLevel         = "log-level"
	FlagLogFormat        = "log-format"
	FlagLegacyTimestamps = "legacy-timestamps"
	FlagStrictRoles      = "strict-roles"
	FlagClearScreen      = "clear-screen"
)

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	FlagLogLevel:         "log.level",
	FlagLogFormat:        "log.format",
	FlagLegacyTimestamps: "session.legacy_timestamps",
	FlagStrictRoles:      "session.strict_roles",
	FlagClearScreen:      "cli.clear_screen",
}

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("config validation failed")

// RegisterFlags defines the command-line flags understood by Load on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "path to a config file (yaml, toml or json)")
	fs.String(FlagLogLevel, "warn", "log level: debug, info, warn or error")
	fs.String(FlagLogFormat, "json", "log format: json or text")
	fs.Bool(FlagLegacyTimestamps, false, "stamp entities with midnight instead of the creation time")
	fs.Bool(FlagStrictRoles, false, "reject unknown role names instead of defaulting to Classic")
	fs.Bool(FlagClearScreen, true, "clear the terminal before each menu action")
}

// Load configuration from flags, environment variables and optionally a
// config file. Precedence, highest first: changed flags, environment,
// config file, defaults. fs may be nil.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}

		if flag := fs.Lookup(FlagConfig); flag != nil && flag.Value.String() != "" {
			v.SetConfigFile(flag.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "json")
	v.SetDefault("session.legacy_timestamps", false)
	v.SetDefault("session.strict_roles", false)
	v.SetDefault("cli.clear_screen", true)
}
