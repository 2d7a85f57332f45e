// Package config loads runtime settings from flags, the environment and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Keys shared by viper, cobra flags and environment variables. A key maps to
// the upper-cased environment variable with dashes replaced by underscores.
const (
	KeyPort            = "port"
	KeyEnv             = "env"
	KeyLogLevel        = "log-level"
	KeyReadTimeout     = "read-timeout"
	KeyWriteTimeout    = "write-timeout"
	KeyIdleTimeout     = "idle-timeout"
	KeyShutdownTimeout = "shutdown-timeout"
	KeyMetricsPath     = "metrics-path"
	KeyDocsEnabled     = "docs-enabled"
)

var (
	ErrInvalidPort        = errors.New("port must be between 1 and 65535")
	ErrInvalidMetricsPath = errors.New("metrics path must start with /")
	ErrInvalidEnv         = errors.New("env must be development or production")
)

type Config struct {
	Port            int
	Env             string
	LogLevel        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MetricsPath     string
	DocsEnabled     bool
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// New returns a viper instance that reads PORT, LOG_LEVEL and friends from
// the environment and falls back to the defaults below.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 5000)
	v.SetDefault(KeyEnv, EnvDevelopment)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyReadTimeout, 15*time.Second)
	v.SetDefault(KeyWriteTimeout, 15*time.Second)
	v.SetDefault(KeyIdleTimeout, 60*time.Second)
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.SetDefault(KeyMetricsPath, "/metrics")
	v.SetDefault(KeyDocsEnabled, true)
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:            v.GetInt(KeyPort),
		Env:             strings.ToLower(v.GetString(KeyEnv)),
		LogLevel:        v.GetString(KeyLogLevel),
		ReadTimeout:     v.GetDuration(KeyReadTimeout),
		WriteTimeout:    v.GetDuration(KeyWriteTimeout),
		IdleTimeout:     v.GetDuration(KeyIdleTimeout),
		ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
		MetricsPath:     v.GetString(KeyMetricsPath),
		DocsEnabled:     v.GetBool(KeyDocsEnabled),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidPort, cfg.Port)
	}
	if !strings.HasPrefix(cfg.MetricsPath, "/") {
		return Config{}, fmt.Errorf("%w: got %q", ErrInvalidMetricsPath, cfg.MetricsPath)
	}
	if cfg.Env != EnvDevelopment && cfg.Env != EnvProduction {
		return Config{}, fmt.Errorf("%w: got %q", ErrInvalidEnv, cfg.Env)
	}

	return cfg, nil
}
