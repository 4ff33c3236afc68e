package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokermind/internal/util"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "pokermind"

// FileEnv names the environment variable holding the config file path
const FileEnv = "POKERMIND_CONFIG_FILE"

// Config provides configuration for pokermind
type Config struct {
	loaded bool

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	HTTP struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"read_timeout"`
		WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"write_timeout"`
		AccessLogs   bool          `yaml:"accessLogs" envconfig:"access_logs"`
		CORSOrigins  []string      `yaml:"corsOrigins" envconfig:"cors_origins"`
	} `yaml:"http"`

	Batch struct {
		// Workers caps the goroutines used by a batch evaluation, 0 means one per hand
		Workers int `yaml:"workers"`
		// MaxHands is the largest batch accepted by a single HTTP request
		MaxHands int `yaml:"maxHands" envconfig:"max_hands"`
	} `yaml:"batch"`

	Sessions struct {
		// Limit caps the number of open sessions, 0 means no limit
		Limit int `yaml:"limit"`
	} `yaml:"sessions"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.HTTP.Addr = ":5000"
	cfg.HTTP.ReadTimeout = 5 * time.Second
	cfg.HTTP.WriteTimeout = 10 * time.Second
	cfg.HTTP.AccessLogs = true
	cfg.HTTP.CORSOrigins = []string{"http://localhost:3000"}
	cfg.Batch.Workers = 8
	cfg.Batch.MaxHands = 1000
	cfg.Sessions.Limit = 1000

	return cfg
}

var config Config

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

// Load will load the configuration. A missing config.yaml is not an error,
// but a missing file named by POKERMIND_CONFIG_FILE is.
func Load() error {
	_, explicit := os.LookupEnv(FileEnv)
	configFile := util.Getenv(FileEnv, "config.yaml")

	cfg := DefaultConfig()

	file, err := os.Open(configFile)
	switch {
	case err == nil:
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	case os.IsNotExist(err) && !explicit:
		// defaults only
	default:
		return err
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return err
	}

	config = cfg
	config.loaded = true
	return nil
}
