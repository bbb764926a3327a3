// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20 // 1048576 bytes

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultDatabasePort is the Postgres port used when discrete fields omit one.
	DefaultDatabasePort = 5432

	// DefaultDatabaseMaxOpenConns caps concurrently checked-out sessions.
	DefaultDatabaseMaxOpenConns = 10

	// DefaultDatabaseMaxIdleConns is the idle pool size.
	DefaultDatabaseMaxIdleConns = 5

	// DefaultCORSMaxAge is how long browsers may cache a preflight, in seconds.
	DefaultCORSMaxAge = 600
)

// envPrefix is stripped from environment variables before they are mapped to keys.
const envPrefix = "APP_"

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	CORS      CORSConfig      `koanf:"cors"      validate:"required"`
	Database  DatabaseConfig  `koanf:"database"  validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// CORSConfig contains the cross-origin policy. The default allows any origin
// but only GET, which leaves the create endpoints same-origin only.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins" validate:"required,min=1,dive,origin"`
	AllowedMethods []string `koanf:"allowed_methods" validate:"required,min=1,dive,oneof=GET HEAD POST OPTIONS"`
	AllowedHeaders []string `koanf:"allowed_headers"`
	MaxAge         int      `koanf:"max_age"         validate:"min=0"`
}

// DatabaseConfig contains storage connection settings.
//
// Either URL or the discrete fields may be set here; when neither is complete
// the environment fallbacks in ResolveDSN are consulted.
type DatabaseConfig struct {
	URL      string `koanf:"url"      validate:"omitempty,dsn"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"     validate:"omitempty,min=1,max=65535"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"  validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`

	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"required,min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
	PingTimeout     time.Duration `koanf:"ping_timeout"      validate:"required,min=100ms"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "costanza-quotes",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "15s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "costanza-quotes",
		"telemetry.sampling_rate": 1.0,

		"cors.allowed_origins": []string{"*"},
		"cors.allowed_methods": []string{"GET"},
		"cors.allowed_headers": []string{"Content-Type", "X-Request-ID", "X-Correlation-ID"},
		"cors.max_age":         DefaultCORSMaxAge,

		"database.url":               "",
		"database.user":              "",
		"database.password":          "",
		"database.host":              "",
		"database.port":              0,
		"database.name":              "",
		"database.sslmode":           "",
		"database.max_open_conns":    DefaultDatabaseMaxOpenConns,
		"database.max_idle_conns":    DefaultDatabaseMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.ping_timeout":      "5s",
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load environment variables with APP_ prefix
	err = k.Load(env.ProviderWithValue(envPrefix, ".", envMapper(k)), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envMapper maps APP_SERVER_READ_TIMEOUT onto the known key server.read_timeout.
// Underscores are ambiguous between nesting and key names, so known keys are
// matched first; unknown variables fall back to treating every underscore as
// a level. Values for list keys are split on commas.
func envMapper(k *koanf.Koanf) func(string, string) (string, any) {
	known := make(map[string]string)
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		raw := strings.ToLower(strings.TrimPrefix(name, envPrefix))

		key, ok := known[raw]
		if !ok {
			return strings.ReplaceAll(raw, "_", "."), value
		}

		if _, isList := k.Get(key).([]any); isList {
			return key, splitList(value)
		}

		if _, isList := k.Get(key).([]string); isList {
			return key, splitList(value)
		}

		return key, value
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
