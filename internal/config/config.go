package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Sources  SourcesConfig `yaml:"sources"`
	HTTP     HTTPConfig    `yaml:"http"`
	LogLevel string        `yaml:"log_level"`
}

type SourcesConfig struct {
	PrimaryURL   string `yaml:"primary_url"`
	SecondaryURL string `yaml:"secondary_url"`
}

type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// Load reads the config file at path. A missing file is not an error: every
// field has a default, so the aggregator runs with no config at all.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Sources.PrimaryURL == "" {
		c.Sources.PrimaryURL = "https://raw.githubusercontent.com/drmlive/fancode-live-events/main/fancode.json"
	}
	if c.Sources.SecondaryURL == "" {
		c.Sources.SecondaryURL = "https://raw.githubusercontent.com/Jitendraunatti/fancode/main/data/fancode.json"
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = 30 * time.Second
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
