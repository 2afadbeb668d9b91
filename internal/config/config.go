package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"picgrid/internal/domain"
	"picgrid/internal/eventbus"
	"picgrid/internal/gallery"
)

// FileName is the default config file name
const FileName = "picgrid.toml"

const (
	MinColumns     = 1
	MaxColumns     = 8
	DefaultColumns = 4
)

// Config represents the application configuration
type Config struct {
	Version    int          `toml:"version"`
	Images     []ImageEntry `toml:"images"`
	UISettings UISettings   `toml:"ui"`
}

// ImageEntry is one seed image
type ImageEntry struct {
	ID  int    `toml:"id"`
	URL string `toml:"url"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Theme         domain.Theme `toml:"theme"`
	Columns       int          `toml:"columns"`
	ConfirmDelete bool         `toml:"confirm_delete"`
	Mouse         bool         `toml:"mouse"`
	LogFile       string       `toml:"log_file"`
}

// EnvOverrides holds settings read from the environment
type EnvOverrides struct {
	ConfigPath string `env:"PICGRID_CONFIG"`
	Theme      string `env:"PICGRID_THEME"`
	Columns    int    `env:"PICGRID_COLUMNS"`
	LogFile    string `env:"PICGRID_LOG_FILE"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path, or for DefaultPath when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service that announces saves on the bus
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "picgrid", FileName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the config file. A missing file yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	data, err := os.ReadFile(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Images = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", cs.filePath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cs.filePath, err)
	}

	return cfg, nil
}

// Save writes the configuration atomically while holding the config lock
func (cs *configService) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(cs.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := flock.New(cs.filePath + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock config: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+FileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp.Name(), cs.filePath); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigChangedEvent{Path: cs.filePath})
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	seed := gallery.DefaultImages()
	images := make([]ImageEntry, len(seed))
	for i, img := range seed {
		images[i] = ImageEntry{ID: int(img.ID), URL: img.URL}
	}

	return &Config{
		Version: 1,
		Images:  images,
		UISettings: UISettings{
			Theme:         domain.ThemeLight,
			Columns:       DefaultColumns,
			ConfirmDelete: true,
			Mouse:         true,
			LogFile:       "picgrid.log",
		},
	}
}

// Validate checks the configuration for values the application cannot use
func (c *Config) Validate() error {
	if !c.UISettings.Theme.Valid() {
		return fmt.Errorf("unknown theme %q (want %q or %q)", c.UISettings.Theme, domain.ThemeLight, domain.ThemeDark)
	}
	if c.UISettings.Columns < MinColumns || c.UISettings.Columns > MaxColumns {
		return fmt.Errorf("columns must be between %d and %d, got %d", MinColumns, MaxColumns, c.UISettings.Columns)
	}

	seen := make(map[int]bool, len(c.Images))
	for i, img := range c.Images {
		if img.ID <= 0 {
			return fmt.Errorf("images[%d]: id must be positive, got %d", i, img.ID)
		}
		if seen[img.ID] {
			return fmt.Errorf("images[%d]: duplicate id %d", i, img.ID)
		}
		seen[img.ID] = true
		if img.URL == "" {
			return fmt.Errorf("images[%d]: url is empty", i)
		}
	}
	return nil
}

// SeedImages returns the configured images, or the built-in set when none are configured
func (c *Config) SeedImages() []domain.Image {
	if len(c.Images) == 0 {
		return gallery.DefaultImages()
	}
	images := make([]domain.Image, len(c.Images))
	for i, img := range c.Images {
		images[i] = domain.Image{ID: domain.ImageID(img.ID), URL: img.URL}
	}
	return images
}

// LoadEnv reads overrides from the environment
func LoadEnv() (EnvOverrides, error) {
	var overrides EnvOverrides
	if err := env.Parse(&overrides); err != nil {
		return EnvOverrides{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return overrides, nil
}

// Apply copies the set overrides into cfg. Callers validate once every layer is applied.
func (o EnvOverrides) Apply(cfg *Config) {
	if o.Theme != "" {
		cfg.UISettings.Theme = domain.Theme(o.Theme)
	}
	if o.Columns != 0 {
		cfg.UISettings.Columns = o.Columns
	}
	if o.LogFile != "" {
		cfg.UISettings.LogFile = o.LogFile
	}
}

// SaveTheme rewrites only the theme in the file at svc.Path(), leaving
// any environment or flag overrides of the running session out of it.
func SaveTheme(svc ConfigService, theme domain.Theme) error {
	cfg, err := svc.Load()
	if err != nil {
		return err
	}
	cfg.UISettings.Theme = theme
	return svc.Save(cfg)
}

// WatchTheme persists every theme change published on bus.
// Failures are passed to onError, which may be nil.
func WatchTheme(bus eventbus.EventBus, svc ConfigService, onError func(error)) func() {
	return bus.Subscribe(eventbus.EventThemeChanged, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.ThemeChangedEvent)
		if !ok {
			return
		}
		if err := SaveTheme(svc, ev.Theme); err != nil {
			log.Printf("Failed to save theme: %v", err)
			if onError != nil {
				onError(err)
			}
		}
	})
}
