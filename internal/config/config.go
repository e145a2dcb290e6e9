package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokernight-bot/internal/util"
)

// Config provides configuration for the poker bot engine
type Config struct {
	loaded bool

	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`

	// StartingBalance is the bankroll a player is created with
	StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`

	SmallBlind int `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind   int `yaml:"bigBlind" envconfig:"big_blind"`

	// DecisionTimeoutSeconds bounds how long the engine waits on a player
	DecisionTimeoutSeconds int `yaml:"decisionTimeoutSeconds" envconfig:"decision_timeout_seconds"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	c := Config{
		PGDSN:                  "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath:         "./sql",
		StartingBalance:        1000,
		SmallBlind:             10,
		BigBlind:               20,
		DecisionTimeoutSeconds: 45,
	}

	return c
}

// DecisionTimeout returns the decision timeout as a duration
func (c Config) DecisionTimeout() time.Duration {
	return time.Duration(c.DecisionTimeoutSeconds) * time.Second
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// A missing config file is fine; the defaults plus environment overrides
// still apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("POKERBOT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("pokerbot", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
