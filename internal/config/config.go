// Package config persists smartpadctl's settings as JSON in the platform
// config directory: device profiles for port selection and the location of
// the layout library.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// appDirName is the directory under the user config dir.
const appDirName = "smartpadctl"

// defaultKeywords are the port-name substrings used to auto-detect the
// SmartPad when a profile has no explicit port.
var defaultKeywords = []string{"smartpad", "midiplus", "usb midi"}

// DeviceProfile names one way of reaching a pad device: either a fixed MIDI
// output port or a keyword list for auto-detection.
type DeviceProfile struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Port     string   `json:"port"`     // explicit port name; empty means auto-detect
	Keywords []string `json:"keywords"` // detection keywords when Port is empty
}

// NewDeviceProfile creates a profile with a generated ID and the default
// detection keywords.
func NewDeviceProfile(name string) DeviceProfile {
	return DeviceProfile{
		ID:       uuid.New().String(),
		Name:     name,
		Keywords: append([]string(nil), defaultKeywords...),
	}
}

// Config holds application configuration.
type Config struct {
	DefaultDevice string          `json:"default_device"` // profile ID
	Devices       []DeviceProfile `json:"devices"`
	DataDir       string          `json:"data_dir,omitempty"` // layout library root override
}

// configDir returns the platform-appropriate config directory.
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, appDirName), nil
}

// Path returns the full path to the config file.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, returning defaults if not found.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		def := NewDeviceProfile("SmartPad")
		return &Config{
			DefaultDevice: def.ID,
			Devices:       []DeviceProfile{def},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Devices) == 0 {
		def := NewDeviceProfile("SmartPad")
		cfg.Devices = []DeviceProfile{def}
		cfg.DefaultDevice = def.ID
	}
	return &cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Device returns the profile with the given ID, or nil.
func (c *Config) Device(id string) *DeviceProfile {
	for i := range c.Devices {
		if c.Devices[i].ID == id {
			return &c.Devices[i]
		}
	}
	return nil
}

// DefaultProfile returns the configured default device profile, falling
// back to the first profile.
func (c *Config) DefaultProfile() DeviceProfile {
	if p := c.Device(c.DefaultDevice); p != nil {
		return *p
	}
	if len(c.Devices) > 0 {
		return c.Devices[0]
	}
	return NewDeviceProfile("SmartPad")
}

// DataPath returns the directory holding the layout library, creating
// nothing; the layouts store handles creation.
func (c *Config) DataPath() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return configDir()
}
