package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when none is given.
const DefaultPath = "tagtally.yaml"

// Config holds all tagtally configuration.
type Config struct {
	CachePath string         `yaml:"cache_path"`
	HistoryDB string         `yaml:"history_db"`
	History   bool           `yaml:"history"`
	Search    SearchConfig   `yaml:"search"`
	Auth      AuthConfig     `yaml:"auth"`
	Analysis  AnalysisConfig `yaml:"analysis"`
	Log       LogConfig      `yaml:"log"`
}

// SearchConfig controls the upstream search request.
type SearchConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Count    int           `yaml:"count"`
	Timeout  time.Duration `yaml:"timeout"`
}

// AuthConfig holds application-only credentials. BearerToken wins over the
// APIKey/APISecret pair when both are set.
type AuthConfig struct {
	BearerToken string `yaml:"bearer_token"`
	APIKey      string `yaml:"api_key"`
	APISecret   string `yaml:"api_secret"`
	TokenURL    string `yaml:"token_url"`
}

// AnalysisConfig controls ranking output.
type AnalysisConfig struct {
	TopHashtags   int    `yaml:"top_hashtags"`
	TopWords      int    `yaml:"top_words"`
	StopWordsFile string `yaml:"stop_words_file"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		CachePath: "twitter_cache.json",
		HistoryDB: "tagtally.db",
		History:   true,
		Search: SearchConfig{
			Endpoint: "https://api.twitter.com/1.1/search/tweets.json",
			Count:    100,
			Timeout:  30 * time.Second,
		},
		Auth: AuthConfig{
			TokenURL: "https://api.twitter.com/oauth2/token",
		},
		Analysis: AnalysisConfig{
			TopHashtags: 3,
			TopWords:    10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, falling back to defaults when path is the
// default location and the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && path == DefaultPath && errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks that numeric settings are usable.
func (c *Config) Validate() error {
	if c.Search.Endpoint == "" {
		return errors.New("config: search.endpoint must be set")
	}
	if c.Search.Count <= 0 {
		return fmt.Errorf("config: search.count must be positive, got %d", c.Search.Count)
	}
	if c.Analysis.TopHashtags <= 0 {
		return fmt.Errorf("config: analysis.top_hashtags must be positive, got %d", c.Analysis.TopHashtags)
	}
	if c.Analysis.TopWords <= 0 {
		return fmt.Errorf("config: analysis.top_words must be positive, got %d", c.Analysis.TopWords)
	}
	if c.CachePath == "" {
		return errors.New("config: cache_path must be set")
	}
	return nil
}
