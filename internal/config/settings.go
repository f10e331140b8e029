// Package config loads and saves user settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pablasso/pomo/internal/schedule"
)

const settingsFileName = "settings.yaml"

// Theme names accepted in the settings file.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings holds everything the user can configure.
type Settings struct {
	Schedule        schedule.Config
	AutoStartBreaks bool
	AutoStartFocus  bool
	Sound           bool
	Theme           string
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Schedule: schedule.DefaultConfig(),
		Sound:    true,
		Theme:    ThemeDark,
	}
}

type yamlSettings struct {
	Pomodoros         int    `yaml:"pomodoros"`
	FocusMinutes      int    `yaml:"focus_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	LongBreakEvery    int    `yaml:"long_break_every"`
	Cycles            int    `yaml:"cycles"`
	AutoStartBreaks   bool   `yaml:"auto_start_breaks"`
	AutoStartFocus    bool   `yaml:"auto_start_focus"`
	Sound             bool   `yaml:"sound"`
	Theme             string `yaml:"theme"`
}

// Load reads settings from the app's config directory. A missing file
// is not an error; defaults are returned instead.
func Load(appName string) (Settings, error) {
	settings := DefaultSettings()
	path, err := settingsPath(appName)
	if err != nil {
		return settings, err
	}
	return loadFrom(path)
}

func loadFrom(path string) (Settings, error) {
	settings := DefaultSettings()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyFileData(&settings, fileData)
	return settings, nil
}

// Save writes settings to the app's config directory, creating it if
// needed.
func Save(appName string, settings Settings) error {
	path, err := settingsPath(appName)
	if err != nil {
		return err
	}
	return saveTo(path, settings)
}

func saveTo(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		Pomodoros:         settings.Schedule.Pomodoros,
		FocusMinutes:      settings.Schedule.FocusMinutes,
		ShortBreakMinutes: settings.Schedule.ShortBreakMinutes,
		LongBreakMinutes:  settings.Schedule.LongBreakMinutes,
		LongBreakEvery:    settings.Schedule.LongBreakEvery,
		Cycles:            settings.Schedule.Cycles,
		AutoStartBreaks:   settings.AutoStartBreaks,
		AutoStartFocus:    settings.AutoStartFocus,
		Sound:             settings.Sound,
		Theme:             settings.Theme,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

// applyFileData copies valid file values over the defaults. Numbers
// below 1 and unknown themes keep their defaults so a hand-edited file
// cannot produce an unbuildable schedule.
func applyFileData(settings *Settings, fileData yamlSettings) {
	if fileData.Pomodoros >= 1 {
		settings.Schedule.Pomodoros = fileData.Pomodoros
	}
	if fileData.FocusMinutes >= 1 {
		settings.Schedule.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.ShortBreakMinutes >= 1 {
		settings.Schedule.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes >= 1 {
		settings.Schedule.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.LongBreakEvery >= 1 {
		settings.Schedule.LongBreakEvery = fileData.LongBreakEvery
	}
	if fileData.Cycles >= 1 {
		settings.Schedule.Cycles = fileData.Cycles
	}
	settings.AutoStartBreaks = fileData.AutoStartBreaks
	settings.AutoStartFocus = fileData.AutoStartFocus
	settings.Sound = fileData.Sound
	if fileData.Theme == ThemeDark || fileData.Theme == ThemeLight {
		settings.Theme = fileData.Theme
	}
}

// Dir returns the app's config directory without creating it.
func Dir(appName string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

func settingsPath(appName string) (string, error) {
	dir, err := Dir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}
