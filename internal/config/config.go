package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Business  BusinessConfig  `yaml:"business"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// BusinessConfig pins the civil timezone the shop operates in. The offset is
// fixed: the business runs in one zone with no DST, and every timestamp is
// recorded and displayed in it.
type BusinessConfig struct {
	TimezoneName   string `yaml:"timezone_name"`         // label only, e.g. "PET"
	UTCOffsetHours int    `yaml:"utc_offset_hours"`      // e.g. -5 for Lima
	CurrencyPrefix string `yaml:"currency_prefix"`       // e.g. "S/"
}

// SessionConfig contains login session settings
type SessionConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
	SlotPath        string `yaml:"slot_path"` // durable current-user slot file
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	TelegramBackup string `yaml:"telegram_backup"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("SESSION_JWT_SECRET"); val != "" {
		c.Session.JWTSecret = val
	}
	if val := os.Getenv("SESSION_SLOT_PATH"); val != "" {
		c.Session.SlotPath = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Session.JWTSecret == "" {
		return fmt.Errorf("session JWT secret is required")
	}
	if len(c.Session.JWTSecret) < 32 {
		return fmt.Errorf("session JWT secret must be at least 32 characters")
	}
	if c.Session.TokenTTLMinutes <= 0 {
		c.Session.TokenTTLMinutes = 12 * 60
	}
	if c.Session.SlotPath == "" {
		c.Session.SlotPath = "session.json"
	}

	if c.Business.UTCOffsetHours < -12 || c.Business.UTCOffsetHours > 14 {
		return fmt.Errorf("invalid UTC offset: %d", c.Business.UTCOffsetHours)
	}
	if c.Business.TimezoneName == "" {
		c.Business.TimezoneName = "PET"
		c.Business.UTCOffsetHours = -5
	}
	if c.Business.CurrencyPrefix == "" {
		c.Business.CurrencyPrefix = "S/"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Scheduler.TelegramBackup == "" {
		c.Scheduler.TelegramBackup = "0 0 4 * * *" // 4 AM UTC nightly
	}

	return nil
}

// Location returns the fixed-offset business timezone.
func (c *Config) Location() *time.Location {
	return time.FixedZone(c.Business.TimezoneName, c.Business.UTCOffsetHours*3600)
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
