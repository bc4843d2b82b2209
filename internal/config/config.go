package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddr       = ":8080"
	DefaultAPIBaseURL = "https://pokeapi.co/api/v2"
	DefaultListLimit  = 20
	DefaultIndexLimit = 151 // first generation
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// APIConfig describes the upstream PokeAPI and the fixed page sizes each
// view requests from it.
type APIConfig struct {
	BaseURL    string        `yaml:"base_url"`
	ListLimit  int           `yaml:"list_limit"`
	IndexLimit int           `yaml:"index_limit"`
	Timeout    time.Duration `yaml:"timeout"` // 0 = no timeout
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr},
		API: APIConfig{
			BaseURL:    DefaultAPIBaseURL,
			ListLimit:  DefaultListLimit,
			IndexLimit: DefaultIndexLimit,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("POKEDEX_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("POKEDEX_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("POKEDEX_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("POKEDEX_LIST_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid POKEDEX_LIST_LIMIT %q: %w", v, err)
		}
		c.API.ListLimit = n
	}
	if v := os.Getenv("POKEDEX_INDEX_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid POKEDEX_INDEX_LIMIT %q: %w", v, err)
		}
		c.API.IndexLimit = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.ListLimit <= 0 || c.API.IndexLimit <= 0 {
		return fmt.Errorf("api limits must be positive (list=%d, index=%d)", c.API.ListLimit, c.API.IndexLimit)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	return nil
}
