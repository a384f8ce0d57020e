package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"slideshow/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DelaySeconds float64 `yaml:"delay_seconds"`
	Fullscreen   bool    `yaml:"fullscreen"`
	Verbose      bool    `yaml:"verbose"`
	WindowWidth  float32 `yaml:"window_width,omitempty"`
	WindowHeight float32 `yaml:"window_height,omitempty"`
}

// LoadSettings reads user preferences from the per-user YAML file.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads user preferences from configPath.
func LoadSettingsFrom(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the per-user YAML file.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// SaveSettingsTo writes user preferences to configPath.
func SaveSettingsTo(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		DelaySeconds: settings.Delay,
		Fullscreen:   settings.Fullscreen,
		Verbose:      settings.Verbose,
		WindowWidth:  settings.WindowWidth,
		WindowHeight: settings.WindowHeight,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file path for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if preferences.ValidDelay(fileData.DelaySeconds) {
		settings.Delay = fileData.DelaySeconds
	}
	if fileData.WindowWidth >= 200 && fileData.WindowHeight >= 150 {
		settings.WindowWidth = fileData.WindowWidth
		settings.WindowHeight = fileData.WindowHeight
	}

	settings.Fullscreen = fileData.Fullscreen
	settings.Verbose = fileData.Verbose
}
