package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-spin/db"
	"github.com/danielhkuo/quickly-spin/wheel"
)

const defaultSQLitePath = "quickly-spin.db"

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	AdminKeySalt    string
	WheelConfigPath string
	LogLevel        slog.Level
	Wheel           wheel.Config
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile, logLevel string

	fs := flag.NewFlagSet("quickly-spin", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (file path for sqlite)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	fs.StringVar(&cfg.WheelConfigPath, "c", "", "Wheel tuning YAML file")
	fs.StringVar(&envFile, "env", ".env", "Env file loaded when present")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment wins over the env file
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.TypeSQLite
		}
	}
	if _, err := db.DriverName(cfg.DatabaseType); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != db.TypeSQLite {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLitePath
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	if cfg.WheelConfigPath == "" {
		cfg.WheelConfigPath = os.Getenv("WHEEL_CONFIG")
	}
	wheelCfg, err := LoadWheelConfig(cfg.WheelConfigPath)
	if err != nil {
		return Config{}, err
	}
	cfg.Wheel = wheelCfg

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// LoadWheelConfig reads wheel tuning from a YAML file. Keys left out keep
// their defaults; an empty path returns the defaults.
func LoadWheelConfig(path string) (wheel.Config, error) {
	cfg := wheel.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return wheel.Config{}, fmt.Errorf("read wheel config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return wheel.Config{}, fmt.Errorf("parse wheel config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return wheel.Config{}, err
	}

	return cfg, nil
}
