package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Session SessionConfig `mapstructure:"session"`
	CLI     CLIConfig     `mapstructure:"cli"`
}

// LogConfig contains all logging-related configuration settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// SessionConfig controls how the session builds entities.
type SessionConfig struct {
	// LegacyTimestamps stamps every entity with midnight of the current day
	// instead of the actual creation time.
	LegacyTimestamps bool `mapstructure:"legacy_timestamps"`

	// StrictRoles rejects unrecognised role names instead of falling back to Classic.
	StrictRoles bool `mapstructure:"strict_roles"`
}

// CLIConfig contains settings for the interactive menu.
type CLIConfig struct {
	ClearScreen bool `mapstructure:"clear_screen"`
}
