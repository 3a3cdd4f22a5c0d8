package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	GinMode  string
	HTTPAddr string
	LogLevel string
	TZ       string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPass     string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	DBMaxAttempts   int
	DBRetryDelay    time.Duration
	ShutdownTimeout time.Duration

	// EnvFile is the env file that was loaded, empty when none was.
	EnvFile string
}

// Load reads the configuration from the process environment. In debug mode
// the env file named by ENV_FILE (default .env.dev) is loaded first; values
// already present in the environment win.
func Load() (*Config, error) {
	cfg := &Config{}

	if getenv("GIN_MODE", "debug") == "debug" {
		envFile := getenv("ENV_FILE", ".env.dev")
		if err := godotenv.Load(envFile); err == nil {
			cfg.EnvFile = envFile
		}
	}

	cfg.GinMode = getenv("GIN_MODE", "debug")
	cfg.HTTPAddr = getenv("HTTP_ADDR", ":8080")
	cfg.LogLevel = getenv("LOG_LEVEL", "info")
	cfg.TZ = getenv("TZ", "UTC")
	cfg.DBDriver = getenv("DB_DRIVER", DriverPostgres)
	cfg.DBHost = getenv("DB_HOST", "localhost")
	cfg.DBPort = getenv("DB_PORT", "5432")
	cfg.DBUser = getenv("DB_USER", "postgres")
	cfg.DBPass = getenv("DB_PASS", "")
	cfg.DBName = getenv("DB_NAME", "library")
	cfg.DBSSLMode = os.Getenv("DB_SSLMODE")
	cfg.SQLitePath = getenv("SQLITE_PATH", "library.db")

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	var err error
	if cfg.DBMaxAttempts, err = getint("DB_MAX_ATTEMPTS", 10); err != nil {
		return nil, err
	}
	if cfg.DBRetryDelay, err = getduration("DB_RETRY_DELAY", 2*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getduration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DBDriver))
	}
	if c.DBDriver == DriverSQLite && c.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
	}
	if c.DBMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_ATTEMPTS must be positive, got %d", c.DBMaxAttempts))
	}
	if c.DBRetryDelay < 0 {
		errs = append(errs, fmt.Errorf("DB_RETRY_DELAY must not be negative, got %s", c.DBRetryDelay))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}

	return errors.Join(errs...)
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.SQLitePath
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getduration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
