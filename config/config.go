package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the main configuration structure, stored as YAML in the
// user's config directory.
type Config struct {
	// StorageDir holds one JSON record per owner.
	StorageDir string `yaml:"storageDir"`
	// MIDIPort names the MIDI output port for playback. Empty means
	// events go to the log instead.
	MIDIPort string `yaml:"midiPort,omitempty"`
	// Owner is the default owner identity for CLI commands.
	Owner string `yaml:"owner,omitempty"`
	// LogMode selects the logger profile ("dev" or "prod").
	LogMode string `yaml:"logMode,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	dir, err := ConfigDir()
	if err != nil {
		dir = "."
	}
	return &Config{
		StorageDir: filepath.Join(dir, "compositions"),
		LogMode:    "dev",
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "midiseq"), nil
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config from its default location, or returns defaults
// if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file from an explicit path. Missing files are
// not an error; defaults fill in for absent fields.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = DefaultConfig().StorageDir
	}
	return cfg, nil
}

// Save writes the config to its default location.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to an explicit path, creating the directory
// if needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
