// Package config loads server configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence
// (env highest).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/dishcover/config.yaml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix namespaces the environment variables read by Load.
const envPrefix = "DISHCOVER_"

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Storage StorageConfig `koanf:"storage"`
	Catalog CatalogConfig `koanf:"catalog"`
	Auth    AuthConfig    `koanf:"auth"`
	Log     LogConfig     `koanf:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":4000".
	Addr string `koanf:"addr" validate:"required"`

	// StaticDir is the directory the SPA is served from. Empty disables
	// static serving.
	StaticDir string `koanf:"static_dir"`

	// CORSOrigin is the allowed browser origin. "*" allows any.
	CORSOrigin string `koanf:"cors_origin" validate:"required"`
}

// StorageConfig configures the SQLite store.
type StorageConfig struct {
	// DBPath is the SQLite database file path.
	DBPath string `koanf:"db_path" validate:"required"`
}

// CatalogConfig configures the recipe catalog.
type CatalogConfig struct {
	// Path is the recipes JSON file. A missing file is tolerated: the
	// server starts with an empty catalog.
	Path string `koanf:"path" validate:"required"`
}

// AuthConfig configures token issuance.
type AuthConfig struct {
	// JWTSecret signs session tokens. Required; there is no insecure
	// development default.
	JWTSecret string `koanf:"jwt_secret" validate:"required,min=16"`

	// TokenTTL is how long issued tokens remain valid.
	TokenTTL time.Duration `koanf:"token_ttl" validate:"required"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// defaultConfig returns a Config with all default values. These are
// applied first, then overridden by the config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:       ":4000",
			StaticDir:  "",
			CORSOrigin: "*",
		},
		Storage: StorageConfig{
			DBPath: "./data/dishcover.db",
		},
		Catalog: CatalogConfig{
			Path: "./data/recipes.json",
		},
		Auth: AuthConfig{
			JWTSecret: "",
			TokenTTL:  7 * 24 * time.Hour,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from layered sources:
//  1. Defaults: built-in values
//  2. Config file: optional YAML file (if one exists)
//  3. Environment variables: DISHCOVER_SERVER_ADDR, DISHCOVER_AUTH_JWT_SECRET, ...
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// DISHCOVER_SERVER_ADDR -> server.addr, DISHCOVER_AUTH_JWT_SECRET -> auth.jwt_secret
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration using struct tags.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("invalid %s: failed %q constraint", fieldPath(fe), fe.Tag())
		}
		return err
	}
	return nil
}

// findConfigFile searches for a config file in the default paths.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransform maps environment variable names to koanf paths. The first
// underscore separates the section; the rest stays joined so multi-word
// keys like jwt_secret survive.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if i := strings.Index(key, "_"); i > 0 {
		return key[:i] + "." + key[i+1:]
	}
	return key
}

// fieldPath renders a validator namespace like "Config.Auth.JWTSecret"
// as "auth.jwt_secret"-style for error messages.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}
