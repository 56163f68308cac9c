package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration options for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"MEDTIME_SERVER_ADDR"`
	JWTSecret       string        `yaml:"jwt_secret" env:"MEDTIME_JWT_SECRET"`
	TokenTTL        time.Duration `yaml:"token_ttl" env:"MEDTIME_TOKEN_TTL"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"MEDTIME_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"MEDTIME_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"MEDTIME_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir          string        `yaml:"dir" env:"MEDTIME_DB_DIR"`
	Filename     string        `yaml:"filename" env:"MEDTIME_DB_FILENAME"`
	QueryTimeout time.Duration `yaml:"query_timeout" env:"MEDTIME_DB_QUERY_TIMEOUT"`
}

// AuthConfig holds mock identity backend configuration
type AuthConfig struct {
	Latency time.Duration `yaml:"latency" env:"MEDTIME_AUTH_LATENCY"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `yaml:"level" env:"MEDTIME_LOG_LEVEL"`
	Format string `yaml:"format" env:"MEDTIME_LOG_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			JWTSecret:       "medtime-dev-secret",
			TokenTTL:        24 * time.Hour,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Dir:          filepath.Join(homeDir, ".medtime"),
			Filename:     "medtime.db",
			QueryTimeout: 10 * time.Second,
		},
		Auth: AuthConfig{
			Latency: time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration from defaults, then an optional YAML file,
// then environment overrides.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, &ConfigError{Field: "config_file", Message: err.Error()}
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, &ConfigError{Field: "environment", Message: err.Error()}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}
	if c.Server.JWTSecret == "" {
		return &ConfigError{Field: "server.jwt_secret", Message: "JWT secret cannot be empty"}
	}
	if c.Server.TokenTTL <= 0 {
		return &ConfigError{Field: "server.token_ttl", Message: "token TTL must be positive"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Auth.Latency < 0 {
		return &ConfigError{Field: "auth.latency", Message: "auth latency cannot be negative"}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Message: "log level must be debug, info, warn, or error"}
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return &ConfigError{Field: "log.format", Message: "log format must be json or console"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
