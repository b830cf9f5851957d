package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the root of the application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Console  ConsoleConfig  `yaml:"console"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	MaxConns int    `yaml:"max_conns"`
}

type CatalogConfig struct {
	BaseURL    string        `yaml:"base_url"`
	UserAgent  string        `yaml:"user_agent"`
	Timeout    time.Duration `yaml:"timeout"`
	RPS        float64       `yaml:"rps"`
	MaxRetries int           `yaml:"max_retries"`
}

type ConsoleConfig struct {
	HistoryFile string `yaml:"history_file"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:   DriverSQLite,
			DSN:      "literalura.db",
			MaxConns: 4,
		},
		Catalog: CatalogConfig{
			BaseURL:    "https://gutendex.com",
			UserAgent:  "literalura/1.0",
			Timeout:    30 * time.Second,
			RPS:        2,
			MaxRetries: 0,
		},
		Console: ConsoleConfig{
			HistoryFile: ".literalura_history",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file and
// the environment, in that order of precedence (environment wins).
func Load() (*Config, error) {
	LoadEnvFiles()

	cfg := Default()
	path := getEnv("LITERALURA_CONFIG", "literalura.yaml")
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadEnvFiles reads .env and .env.local without overriding variables
// already present in the process environment.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnv("DB_DSN", c.Database.DSN)
	c.Database.MaxConns = getEnvInt("DB_MAX_CONNS", c.Database.MaxConns)

	c.Catalog.BaseURL = getEnv("CATALOG_BASE_URL", c.Catalog.BaseURL)
	c.Catalog.UserAgent = getEnv("CATALOG_USER_AGENT", c.Catalog.UserAgent)
	c.Catalog.Timeout = getEnvDuration("CATALOG_TIMEOUT", c.Catalog.Timeout)
	c.Catalog.RPS = getEnvFloat("CATALOG_RPS", c.Catalog.RPS)
	c.Catalog.MaxRetries = getEnvInt("CATALOG_MAX_RETRIES", c.Catalog.MaxRetries)

	c.Console.HistoryFile = getEnv("HISTORY_FILE", c.Console.HistoryFile)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	c.Metrics.Addr = getEnv("METRICS_ADDR", c.Metrics.Addr)
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Database),
		validation.Field(&c.Catalog),
		validation.Field(&c.Log),
	)
}

func (d DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Driver, validation.Required, validation.In(DriverSQLite, DriverPostgres)),
		validation.Field(&d.DSN, validation.Required),
		validation.Field(&d.MaxConns, validation.Min(1)),
	)
}

func (c CatalogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.Required),
		validation.Field(&c.RPS, validation.Min(0.0)),
		validation.Field(&c.MaxRetries, validation.Min(0), validation.Max(5)),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In("trace", "debug", "info", "warn", "warning", "error")),
		validation.Field(&l.Format, validation.In("text", "json")),
	)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
