// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, a .env file and
// environment variables). It provides type-safe access to the settings the
// relay needs while keeping configuration details separate from the HTTP
// and generation logic.
package config
