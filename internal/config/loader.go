package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	envPrefix  = "VELOCITY_"
	envConfig  = "VELOCITY_CONFIG"
	envPort    = "PORT"
	maxTCPPort = 65535
)

// LoadOption customizes Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	flags *pflag.FlagSet
}

// WithFlags layers explicitly set command line flags on top of everything
// else. Flag names use dashes (log-level) and map to keys with underscores.
// A set --config flag takes the place of VELOCITY_CONFIG.
func WithFlags(fs *pflag.FlagSet) LoadOption {
	return func(o *loadOptions) {
		o.flags = fs
	}
}

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New())
//  2. YAML file named by --config or VELOCITY_CONFIG
//  3. bare PORT, as set by hosting platforms
//  4. env (prefix VELOCITY_)
//  5. command line flags passed via WithFlags
func Load(_ context.Context, opts ...LoadOption) (*Config, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	base := New()
	k := koanf.New(".")

	if path := configPath(o.flags); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	if port := os.Getenv(envPort); port != "" {
		if err := k.Set("port", port); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// VELOCITY_ASSETS_DIR -> assets_dir; underscores are kept to match the koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if o.flags != nil {
		var setErr error
		o.flags.Visit(func(f *pflag.Flag) {
			if f.Name == "config" || setErr != nil {
				return
			}
			setErr = k.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
		})
		if setErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, setErr)
		}
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Port < 1 || c.Port > maxTCPPort:
		return fmt.Errorf("%w: port must be in 1..%d, got %d", ErrInvalidConfig, maxTCPPort, c.Port)
	case strings.TrimSpace(c.AssetsDir) == "":
		return fmt.Errorf("%w: assets_dir must not be empty", ErrInvalidConfig)
	case c.LogFormat != "text" && c.LogFormat != "json":
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

func configPath(fs *pflag.FlagSet) string {
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			return f.Value.String()
		}
	}
	return os.Getenv(envConfig)
}
