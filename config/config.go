// Package config loads pokedex settings from an optional YAML file and
// POKEDEX_* environment variables. Command-line flags are applied on top
// by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Nicolas-rosa/Pokedex/pokeapi"
	"github.com/Nicolas-rosa/Pokedex/pokedex"
)

const (
	DefaultConcurrency = 25
	EnvConfigPath      = "POKEDEX_CONFIG"
)

type Config struct {
	Count       int           `yaml:"count"`
	Concurrency int           `yaml:"concurrency"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	PerPage     int           `yaml:"per_page"`
	Theme       string        `yaml:"theme"`
	LogFile     string        `yaml:"log_file"`
	Verbose     bool          `yaml:"verbose"`
	AltScreen   bool          `yaml:"alt_screen"`
}

func Default() Config {
	return Config{
		Count:       pokedex.DefaultCount,
		Concurrency: DefaultConcurrency,
		BaseURL:     pokeapi.DefaultBaseURL,
		Timeout:     pokeapi.DefaultTimeout,
		PerPage:     pokedex.DefaultPerPage,
		Theme:       pokedex.ThemeDefault.String(),
		AltScreen:   true,
	}
}

// DefaultPath returns the user config location, e.g. ~/.config/pokedex/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pokedex", "config.yaml")
}

// Load reads path (or POKEDEX_CONFIG, or DefaultPath when path is empty),
// then applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Count = EnvInt("POKEDEX_COUNT", c.Count)
	c.Concurrency = EnvInt("POKEDEX_CONCURRENCY", c.Concurrency)
	c.BaseURL = EnvString("POKEDEX_BASE_URL", c.BaseURL)
	c.Timeout = EnvDuration("POKEDEX_TIMEOUT", c.Timeout)
	c.PerPage = EnvInt("POKEDEX_PER_PAGE", c.PerPage)
	c.Theme = EnvString("POKEDEX_THEME", c.Theme)
	c.LogFile = EnvString("POKEDEX_LOG_FILE", c.LogFile)
	c.Verbose = EnvBool("POKEDEX_VERBOSE", c.Verbose)
}

// Validate checks ranges and normalises zero values back to defaults.
func (c *Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	if c.PerPage <= 0 {
		c.PerPage = pokedex.DefaultPerPage
	}
	if c.Timeout <= 0 {
		c.Timeout = pokeapi.DefaultTimeout
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = pokeapi.DefaultBaseURL
	}
	if _, err := pokedex.ParseTheme(c.Theme); err != nil {
		return err
	}
	return nil
}

// EnvString returns the trimmed value of key, or fallback when unset or blank.
func EnvString(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func EnvInt(key string, fallback int) int {
	return ParseInt(os.Getenv(key), fallback)
}

func EnvBool(key string, fallback bool) bool {
	return ParseBool(os.Getenv(key), fallback)
}

func EnvDuration(key string, fallback time.Duration) time.Duration {
	return ParseDuration(os.Getenv(key), fallback)
}

func ParseCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func ParseBool(raw string, fallback bool) bool {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func ParseInt(raw string, fallback int) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func ParseFloat(raw string, fallback float64) float64 {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return n
}

func ParseDuration(raw string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
