package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"glance/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	FeedFile string         `toml:"feed_file,omitempty"` // optional TOML feed replacing the built-in one
	Voice    VoiceSettings  `toml:"voice"`
	Picker   PickerSettings `toml:"picker"`
	UI       UISettings     `toml:"ui"`
	Log      LogSettings    `toml:"log"`
}

// VoiceSettings configures the simulated voice capture
type VoiceSettings struct {
	DelayMS     int    `toml:"delay_ms"`
	Placeholder string `toml:"placeholder"`
	TimeoutMS   int    `toml:"timeout_ms"`
}

// PickerSettings configures the image picker
type PickerSettings struct {
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
	Crop   bool `toml:"crop"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title           string   `toml:"title"`
	Shortcuts       []string `toml:"shortcuts"`
	StatusTimeoutMS int      `toml:"status_timeout_ms"`
}

// LogSettings configures the log file
type LogSettings struct {
	File string `toml:"file"`
}

// Delay returns the voice capture delay
func (v VoiceSettings) Delay() time.Duration {
	return time.Duration(v.DelayMS) * time.Millisecond
}

// Timeout returns the recognition deadline
func (v VoiceSettings) Timeout() time.Duration {
	return time.Duration(v.TimeoutMS) * time.Millisecond
}

// StatusTimeout returns how long status messages stay visible
func (u UISettings) StatusTimeout() time.Duration {
	return time.Duration(u.StatusTimeoutMS) * time.Millisecond
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
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service using the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "glance", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it doesn't exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded()
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded()
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

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

func (cs *configService) publishLoaded() {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Voice.DelayMS < 0 {
		return fmt.Errorf("voice.delay_ms must not be negative, got %d", c.Voice.DelayMS)
	}
	if c.Voice.TimeoutMS <= 0 {
		return fmt.Errorf("voice.timeout_ms must be positive, got %d", c.Voice.TimeoutMS)
	}
	if c.Picker.Width <= 0 || c.Picker.Height <= 0 {
		return fmt.Errorf("picker size must be positive, got %dx%d", c.Picker.Width, c.Picker.Height)
	}
	if c.UI.StatusTimeoutMS <= 0 {
		return fmt.Errorf("ui.status_timeout_ms must be positive, got %d", c.UI.StatusTimeoutMS)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Voice: VoiceSettings{
			DelayMS:     1500,
			Placeholder: "voice search",
			TimeoutMS:   5000,
		},
		Picker: PickerSettings{
			Width:  300,
			Height: 400,
			Crop:   true,
		},
		UI: UISettings{
			Title:           "Google",
			Shortcuts:       []string{"Search", "Translate", "Image", "Homework"},
			StatusTimeoutMS: 3000,
		},
		Log: LogSettings{
			File: "glance.log",
		},
	}
}
