// Package config loads the application configuration from a YAML file
// and/or the environment.
//
// The file path comes from, in priority order:
//  1. The CONFIG_PATH environment variable
//  2. The --config flag of the root command
//
// With neither set, every value is read from the environment and falls
// back to its env-default.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/aanand-mishra/course-registration/internal/auth"
	"github.com/aanand-mishra/course-registration/internal/storage"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"prod"`

	Storage Storage `yaml:"storage"`
	Auth    Auth    `yaml:"auth"`
	Admin   Admin   `yaml:"admin"`
}

// Storage selects the collection backend.
type Storage struct {
	// Driver is "memory" or "sqlite".
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`

	// Path is the SQLite DSN. The database is reset at start-up.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:":memory:"`
}

// Auth selects how passwords are stored.
type Auth struct {
	// Hasher is "plain" or "bcrypt".
	Hasher string `yaml:"hasher" env:"AUTH_HASHER" env-default:"bcrypt"`

	BcryptCost int `yaml:"bcrypt_cost" env:"AUTH_BCRYPT_COST" env-default:"10"`
}

// Admin holds the credentials of the bootstrap admin account.
type Admin struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"admin123"`
}

// Load reads the configuration from configPath, or from the environment
// alone when configPath is empty, and validates it.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read config from environment: %w", err)
		}
	} else {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad resolves the config path (CONFIG_PATH first, then flagPath) and
// loads it, exiting the process on failure.
func MustLoad(flagPath string) *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = flagPath
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case storage.DriverMemory, storage.DriverSQLite:
	default:
		return fmt.Errorf("config: storage.driver must be memory or sqlite, got %q", c.Storage.Driver)
	}

	switch c.Auth.Hasher {
	case auth.HasherPlain, auth.HasherBcrypt:
	default:
		return fmt.Errorf("config: auth.hasher must be plain or bcrypt, got %q", c.Auth.Hasher)
	}

	if c.Admin.Username == "" {
		return fmt.Errorf("config: admin.username must not be empty")
	}
	return nil
}
