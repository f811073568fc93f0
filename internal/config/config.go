package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Source is an RSS feed used as a fallback search provider when no API
// key is configured.
type Source struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

// APIConfig holds the news-search API settings.
type APIConfig struct {
	BaseURL  string `yaml:"base_url"`
	Key      string `yaml:"key"`
	PageSize int    `yaml:"page_size,omitempty"`
}

type AIConfig struct {
	Provider string `yaml:"provider"` // "claude" or "openai"
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// SpeechConfig holds text-to-speech / speech-recognition settings.
type SpeechConfig struct {
	APIKey string `yaml:"api_key"`
	Voice  string `yaml:"voice,omitempty"`
	Model  string `yaml:"model,omitempty"`
}

type Config struct {
	API            APIConfig     `yaml:"api"`
	RequestTimeout string        `yaml:"request_timeout,omitempty"`
	Retention      string        `yaml:"retention,omitempty"`
	Sources        []Source      `yaml:"sources"`
	AI             *AIConfig     `yaml:"ai,omitempty"`
	Speech         *SpeechConfig `yaml:"speech,omitempty"`
}

// APIKey returns the resolved search API key (config or env var).
func (c *Config) APIKey() string {
	if c.API.Key != "" {
		return c.API.Key
	}
	return os.Getenv("NEWSPAPER_API_KEY")
}

// AIEnabled returns true if AI is configured with a valid API key.
func (c *Config) AIEnabled() bool {
	if c.AI == nil {
		return false
	}
	return c.AIKey() != ""
}

// AIKey returns the resolved AI API key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("NEWSPAPER_AI_KEY")
}

// SpeechEnabled returns true if speech is configured with an API key.
func (c *Config) SpeechEnabled() bool {
	return c.SpeechKey() != ""
}

// SpeechKey returns the resolved speech API key (config or env var).
func (c *Config) SpeechKey() string {
	if c.Speech != nil && c.Speech.APIKey != "" {
		return c.Speech.APIKey
	}
	return os.Getenv("NEWSPAPER_SPEECH_KEY")
}

// Timeout returns the search request timeout, defaulting to 10s.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// RetentionDuration returns the cache retention period, defaulting to 30 days.
// Supports "Nd" day syntax alongside time.ParseDuration forms.
func (c *Config) RetentionDuration() time.Duration {
	if c.Retention == "" {
		return 30 * 24 * time.Hour
	}
	if len(c.Retention) > 1 && c.Retention[len(c.Retention)-1] == 'd' {
		var days int
		if _, err := fmt.Sscanf(c.Retention, "%dd", &days); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	d, err := time.ParseDuration(c.Retention)
	if err != nil {
		return 30 * 24 * time.Hour
	}
	return d
}

// PageSize returns the number of articles requested per search, defaulting to 20.
func (c *Config) PageSize() int {
	if c.API.PageSize <= 0 {
		return 20
	}
	return c.API.PageSize
}

func (c *Config) EnabledSources() []Source {
	var out []Source
	for _, s := range c.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newspaper", "config.yaml")
}

func CachePath() string {
	return filepath.Join(xdg.CacheHome, "newspaper", "newspaper.db")
}

// HistoryPath is where the newline-delimited search history lives.
func HistoryPath() string {
	return filepath.Join(xdg.DataHome, "newspaper", "search_history.txt")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL != "" {
		u, err := url.Parse(cfg.API.BaseURL)
		if err != nil {
			return fmt.Errorf("api: invalid base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("api: base_url scheme must be http or https, got %q", u.Scheme)
		}
	}
	validTypes := map[string]bool{"rss": true, "atom": true}
	for i, s := range cfg.Sources {
		if s.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if s.URL == "" {
			return fmt.Errorf("source %q: url is required", s.Name)
		}
		u, err := url.Parse(s.URL)
		if err != nil {
			return fmt.Errorf("source %q: invalid url: %w", s.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source %q: url scheme must be http or https, got %q", s.Name, u.Scheme)
		}
		if !validTypes[s.Type] {
			return fmt.Errorf("source %q: unknown type %q (valid: rss, atom)", s.Name, s.Type)
		}
	}
	if cfg.AI != nil && cfg.AI.Provider != "" && cfg.AI.Provider != "claude" && cfg.AI.Provider != "openai" {
		return fmt.Errorf("ai: unknown provider %q (valid: claude, openai)", cfg.AI.Provider)
	}
	return nil
}
