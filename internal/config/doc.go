// Package config handles configuration loading, parsing, and validation
// from various sources (flags, environment variables, files). It provides
// type-safe access to the settings needed by the logger, the session, and
// the menu while keeping configuration details separate from domain logic.
package config
