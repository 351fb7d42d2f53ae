package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/axitpadasala108/roven-global/internal/eventbus"
)

// Defaults applied when a field is missing or out of range.
const (
	DefaultAPIBaseURL       = "http://localhost:3000"
	DefaultSearchLimit      = 10
	DefaultSearchDebounceMS = 350
)

// Config represents the application configuration
type Config struct {
	Version          int        `toml:"version"`
	APIBaseURL       string     `toml:"api_base_url"`
	SearchLimit      int        `toml:"search_limit"`
	SearchDebounceMS int        `toml:"search_debounce_ms"`
	UI               UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowBrands     bool `toml:"show_brands"`
	AutosaveOnExit bool `toml:"autosave_on_exit"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a new config service rooted at the user config dir
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	rovenDir := filepath.Join(configDir, "roven")
	os.MkdirAll(rovenDir, 0755)

	return &service{
		filePath: filepath.Join(rovenDir, "config.toml"),
	}
}

// NewServiceWithBus creates a config service that publishes config events
func NewServiceWithBus(bus eventbus.EventBus) Service {
	s := NewService().(*service)
	s.bus = bus
	return s
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Version:          1,
		APIBaseURL:       DefaultAPIBaseURL,
		SearchLimit:      DefaultSearchLimit,
		SearchDebounceMS: DefaultSearchDebounceMS,
		UI: UISettings{
			ShowBrands:     true,
			AutosaveOnExit: true,
		},
	}
}

// Path returns the location of the config file
func (s *service) Path() string {
	return s.filePath
}

// Load loads the configuration from the default location
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if s.bus != nil {
			s.bus.Publish(eventbus.ConfigLoadedEvent{APIBaseURL: cfg.APIBaseURL})
		}
		return cfg, nil
	}

	cfg, err := s.LoadFromPath(s.filePath)
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigLoadedEvent{APIBaseURL: cfg.APIBaseURL})
	}
	return cfg, nil
}

// Save saves the configuration to the default location
func (s *service) Save(config *Config) error {
	if err := s.SaveToPath(config, s.filePath); err != nil {
		return err
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.ConfigSavedEvent{})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
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

// applyDefaults fills zero-valued fields so a hand-edited partial file
// still yields a usable config.
func applyDefaults(cfg *Config) {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = DefaultSearchLimit
	}
	if cfg.SearchDebounceMS <= 0 {
		cfg.SearchDebounceMS = DefaultSearchDebounceMS
	}
}
