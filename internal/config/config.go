package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables that override the config file
const (
	EnvAPIURL   = "DOCSEARCH_API_URL"
	EnvPageSize = "DOCSEARCH_PAGE_SIZE"
	EnvLogLevel = "DOCSEARCH_LOG_LEVEL"
	EnvLogFile  = "DOCSEARCH_LOG_FILE"
)

// Defaults
const (
	DefaultBaseURL       = "http://localhost:8000"
	DefaultTimeoutSec    = 10
	DefaultPageSize      = 10
	DefaultDocCacheSize  = 128
	DefaultSnippetLength = 200
	DefaultLogLevel      = "info"
	DefaultLogFile       = "docsearch.log"
	maxPageSize          = 100
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	API     APISettings    `toml:"api"`
	Search  SearchSettings `toml:"search"`
	UI      UISettings     `toml:"ui"`
	Logging LogSettings    `toml:"logging"`
}

// APISettings locates the search backend
type APISettings struct {
	BaseURL    string `toml:"base_url"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// SearchSettings controls request shaping
type SearchSettings struct {
	PageSize     int `toml:"page_size"`
	DocCacheSize int `toml:"doc_cache_size"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SnippetLength int  `toml:"snippet_length"`
	AltScreen     bool `toml:"alt_screen"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Timeout returns the per-request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSec) * time.Second
}

// ApplyDefaults fills zero values
func (c *Config) ApplyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.TimeoutSec <= 0 {
		c.API.TimeoutSec = DefaultTimeoutSec
	}
	if c.Search.PageSize <= 0 {
		c.Search.PageSize = DefaultPageSize
	}
	if c.Search.DocCacheSize <= 0 {
		c.Search.DocCacheSize = DefaultDocCacheSize
	}
	if c.UI.SnippetLength <= 0 {
		c.UI.SnippetLength = DefaultSnippetLength
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.File == "" {
		c.Logging.File = DefaultLogFile
	}
}

// Validate checks the settings that cannot be defaulted
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api.base_url %q: scheme must be http or https", c.API.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: missing host", c.API.BaseURL)
	}
	if c.Search.PageSize > maxPageSize {
		return fmt.Errorf("search.page_size %d exceeds %d", c.Search.PageSize, maxPageSize)
	}
	return nil
}

// ApplyEnv overrides settings from the environment. A .env file in the working
// directory is loaded first if present; variables already set win over it.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(EnvPageSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPageSize, err)
		}
		c.Search.PageSize = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service backed by path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/docsearch/config.toml or its platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "docsearch", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		UI: UISettings{AltScreen: true},
	}
	cfg.ApplyDefaults()
	return cfg
}
