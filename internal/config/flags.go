package config

import (
	"github.com/spf13/pflag"
)

// NewFlagSet declares the command line overrides understood by Load.
// Defaults are left zero so only flags the user sets take effect.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file (overrides VELOCITY_CONFIG)")
	fs.String("host", "", "interface to bind (default 0.0.0.0)")
	fs.Int("port", 0, "listen port (default 5000, or $PORT)")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.String("log-format", "", "log format: text or json")
	fs.String("assets-dir", "", "directory served under /dashboards/")
	return fs
}
