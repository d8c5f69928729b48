package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces every environment variable the service reads.
// HEALTH_HTTP_PORT maps to the http_port key.
const EnvPrefix = "HEALTH_"

// Config holds all runtime configuration. Every field has a default, so the
// service starts with an empty environment. The reported region is not here:
// it is fixed at build time, see domain.Region.
type Config struct {
	// Server
	HTTPPort        int           `koanf:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	// Logging
	LogLevel       string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogDevelopment bool   `koanf:"log_development"`
	LogFile        string `koanf:"log_file"`
	LogMaxSizeMB   int    `koanf:"log_max_size_mb" validate:"gte=1"`
	LogMaxBackups  int    `koanf:"log_max_backups" validate:"gte=0"`
	LogMaxAgeDays  int    `koanf:"log_max_age_days" validate:"gte=0"`
}

// Default returns the configuration used when no environment overrides are set.
func Default() Config {
	return Config{
		HTTPPort:        8080,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 15 * time.Second,

		LogLevel:      "info",
		LogMaxSizeMB:  100,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.HTTPPort) }

// Load layers defaults, then HEALTH_* environment variables, then validates
// the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its validate tag and reports the
// first failing key by its koanf name.
func (c *Config) Validate() error {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("koanf")
	})

	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config %q: failed %q rule (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
