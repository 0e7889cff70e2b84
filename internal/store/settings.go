package store

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const settingsKey = "settings"

// Settings are the player's persisted preferences.
type Settings struct {
	Sound bool `yaml:"sound"`
}

// DefaultSettings has sound on, matching a first launch.
func DefaultSettings() Settings {
	return Settings{Sound: true}
}

// LoadSettings reads the settings, returning defaults if none were saved.
func LoadSettings(kv KV) (Settings, error) {
	data, err := kv.Load(settingsKey)
	if errors.Is(err, ErrNotFound) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return DefaultSettings(), err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// SaveSettings writes the settings.
func SaveSettings(kv KV, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return kv.Save(settingsKey, data)
}
