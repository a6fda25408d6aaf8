// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New() returns a Config populated with defaults.
// - Load layers file, environment and command line values on top of New().
// - Errors are wrapped around this package's sentinel errors.
package config

import (
	"net"
	"strconv"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Host is the interface to bind. Empty or 0.0.0.0 binds all interfaces.
	Host string `koanf:"host"`

	// Port is the HTTP listen port.
	Port int `koanf:"port"`

	// AssetsDir is the directory served under /dashboards/.
	AssetsDir string `koanf:"assets_dir"`

	// ServiceName and Version are reported by /api/health.
	ServiceName string `koanf:"service_name"`
	Version     string `koanf:"version"`

	// CORSOrigins lists allowed cross-origin callers; "*" allows any.
	CORSOrigins []string `koanf:"cors_origins"`

	// EnableCompression gzips responses for clients that accept it.
	EnableCompression bool `koanf:"enable_compression"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Host:              "0.0.0.0",
		Port:              5000,
		AssetsDir:         "dashboards",
		ServiceName:       "Velocity Dashboard API",
		Version:           "1.0.0",
		CORSOrigins:       []string{"*"},
		EnableCompression: true,
	}
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
