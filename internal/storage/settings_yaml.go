package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"boxtimer/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	RoundDurationSeconds int `yaml:"round_duration_seconds"`
	RestDurationSeconds  int `yaml:"rest_duration_seconds"`
	TotalRounds          int `yaml:"total_rounds"`
}

// LoadSettings reads startup defaults from the user config directory.
// If the config file does not exist, default settings are returned.
// The file is never written; edits made in the app last for the session.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads startup defaults from configPath.
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

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.RoundDurationSeconds > 0 {
		settings.RoundDurationSeconds = fileData.RoundDurationSeconds
	}
	if fileData.RestDurationSeconds > 0 {
		settings.RestDurationSeconds = fileData.RestDurationSeconds
	}
	if fileData.TotalRounds > 0 {
		settings.TotalRounds = fileData.TotalRounds
	}
}
