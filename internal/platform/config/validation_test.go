package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "test-service",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  15 * time.Second,
			MaxRequestSize:  1048576,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET"},
		},
		Database: DatabaseConfig{
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			PingTimeout:  5 * time.Second,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "app name required", mutate: func(c *Config) { c.App.Name = "" }, wantErr: "app.name is required"},
		{name: "app version required", mutate: func(c *Config) { c.App.Version = "" }, wantErr: "app.version is required"},
		{name: "unknown environment", mutate: func(c *Config) { c.App.Environment = "staging" }, wantErr: "app.environment must be one of"},
		{name: "prod environment", mutate: func(c *Config) { c.App.Environment = "prod" }},

		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port is required"},
		{name: "port too high", mutate: func(c *Config) { c.Server.Port = 65536 }, wantErr: "server.port must be at most 65535"},
		{name: "port 1", mutate: func(c *Config) { c.Server.Port = 1 }},
		{name: "host required", mutate: func(c *Config) { c.Server.Host = "" }, wantErr: "server.host"},
		{name: "read timeout under a second", mutate: func(c *Config) { c.Server.ReadTimeout = 500 * time.Millisecond }, wantErr: "server.read_timeout must be at least"},
		{name: "request timeout under 100ms", mutate: func(c *Config) { c.Server.RequestTimeout = 10 * time.Millisecond }, wantErr: "server.request_timeout"},
		{name: "max request size", mutate: func(c *Config) { c.Server.MaxRequestSize = 0 }, wantErr: "server.max_request_size"},

		{name: "trace level", mutate: func(c *Config) { c.Log.Level = "trace" }},
		{name: "levels are lowercase", mutate: func(c *Config) { c.Log.Level = "DEBUG" }, wantErr: "log.level must be one of"},
		{name: "pretty format", mutate: func(c *Config) { c.Log.Format = "pretty" }},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "log file path when enabled", mutate: func(c *Config) {
			c.Log.File = LogFileConfig{Enabled: true}
		}, wantErr: "log.file.path is required when enabled"},
		{name: "log file path ignored when disabled", mutate: func(c *Config) { c.Log.File = LogFileConfig{} }},
		{name: "log file too large", mutate: func(c *Config) {
			c.Log.File = LogFileConfig{Enabled: true, Path: "/var/log/quotes.log", MaxSizeMB: 1025}
		}, wantErr: "log.file.max_size must be at most 1024"},

		{name: "telemetry endpoint when enabled", mutate: func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "quotes"}
		}, wantErr: "telemetry.endpoint is required when enabled"},
		{name: "telemetry service name when enabled", mutate: func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "http://otel:4317"}
		}, wantErr: "telemetry.service_name"},
		{name: "telemetry endpoint must be a URL", mutate: func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "otel-collector", ServiceName: "quotes"}
		}, wantErr: "telemetry.endpoint must be a valid URL"},
		{name: "telemetry enabled", mutate: func(c *Config) {
			c.Telemetry = TelemetryConfig{Enabled: true, Endpoint: "http://otel:4317", ServiceName: "quotes", SamplingRate: 0.25}
		}},
		{name: "sampling rate above one", mutate: func(c *Config) { c.Telemetry.SamplingRate = 1.1 }, wantErr: "telemetry.sampling_rate"},
		{name: "negative sampling rate", mutate: func(c *Config) { c.Telemetry.SamplingRate = -0.1 }, wantErr: "telemetry.sampling_rate"},

		{name: "origins required", mutate: func(c *Config) { c.CORS.AllowedOrigins = nil }, wantErr: "cors.allowed_origins"},
		{name: "methods required", mutate: func(c *Config) { c.CORS.AllowedMethods = []string{} }, wantErr: "cors.allowed_methods"},
		{name: "POST may be allowed", mutate: func(c *Config) { c.CORS.AllowedMethods = []string{"GET", "POST"} }},
		{name: "DELETE is not served", mutate: func(c *Config) {
			c.CORS.AllowedMethods = []string{"GET", "DELETE"}
		}, wantErr: "cors.allowed_methods[1] must be one of"},

		{name: "max open conns required", mutate: func(c *Config) { c.Database.MaxOpenConns = 0 }, wantErr: "database.max_open_conns"},
		{name: "negative idle conns", mutate: func(c *Config) { c.Database.MaxIdleConns = -1 }, wantErr: "database.max_idle_conns"},
		{name: "ping timeout too small", mutate: func(c *Config) { c.Database.PingTimeout = time.Millisecond }, wantErr: "database.ping_timeout"},
		{name: "database port out of range", mutate: func(c *Config) { c.Database.Port = 70000 }, wantErr: "database.port"},
		{name: "unknown sslmode", mutate: func(c *Config) { c.Database.SSLMode = "sometimes" }, wantErr: "database.sslmode"},
		{name: "verify-full sslmode", mutate: func(c *Config) { c.Database.SSLMode = "verify-full" }},
		{name: "credentials are optional here", mutate: func(c *Config) { c.Database.User = "george" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate_ReportsEveryFailure(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Server.Port = -1
	cfg.Database.MaxOpenConns = 0

	err := cfg.Validate()
	require.Error(t, err)

	lines := strings.Split(err.Error(), "\n")
	assert.Equal(t, "config validation failed:", lines[0])
	assert.Len(t, lines, 4)
}

func TestConfig_Validate_DatabaseURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{url: ""},
		{url: "postgres://george:bosco@db:5432/quotes"},
		{url: "POSTGRESQL://db/quotes"},
		{url: "sqlite:///var/lib/quotes.db"},
		{url: "file:quotes.db?cache=shared"},
		{url: ":memory:"},
		{url: "mysql://george:bosco@db/quotes", wantErr: true},
		{url: "db.internal:5432", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			cfg := validConfig()
			cfg.Database.URL = tt.url

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), "database.url must start with one of")
			assert.NotContains(t, err.Error(), "bosco", "the DSN is never echoed")
		})
	}
}

func TestConfig_Validate_CORSOrigins(t *testing.T) {
	tests := []struct {
		origins []string
		wantErr string
	}{
		{origins: []string{"*"}},
		{origins: []string{"https://quotes.example.com", "http://localhost:3000"}},
		{origins: []string{"https://quotes.example.com/"}},
		{origins: []string{"quotes.example.com"}, wantErr: "cors.allowed_origins[0]"},
		{origins: []string{"*", "ftp://example.com"}, wantErr: "cors.allowed_origins[1]"},
		{origins: []string{"https://example.com/getquotes/"}, wantErr: "cors.allowed_origins[0]"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.origins, ","), func(t *testing.T) {
			cfg := validConfig()
			cfg.CORS.AllowedOrigins = tt.origins

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "http(s) origin")
		})
	}
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.server.port", "server.port"},
		{"Config.database.max_open_conns", "database.max_open_conns"},
		{"Config.log.file.path", "log.file.path"},
		{"Config.cors.allowed_methods[2]", "cors.allowed_methods[2]"},
		{"Config", "Config"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.namespace))
		})
	}
}
