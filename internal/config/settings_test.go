package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)

	settings, err := loadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings != DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", settingsFileName)

	want := DefaultSettings()
	want.Schedule.Pomodoros = 6
	want.Schedule.FocusMinutes = 50
	want.AutoStartBreaks = true
	want.Sound = false
	want.Theme = ThemeLight

	if err := saveTo(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := loadFrom(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadFrom_InvalidValuesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	raw := "pomodoros: 0\nfocus_minutes: -5\ntheme: neon\nsound: true\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	settings, err := loadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defaults := DefaultSettings()
	if settings.Schedule.Pomodoros != defaults.Schedule.Pomodoros {
		t.Errorf("expected default pomodoros, got %d", settings.Schedule.Pomodoros)
	}
	if settings.Schedule.FocusMinutes != defaults.Schedule.FocusMinutes {
		t.Errorf("expected default focus minutes, got %d", settings.Schedule.FocusMinutes)
	}
	if settings.Theme != defaults.Theme {
		t.Errorf("expected default theme, got %q", settings.Theme)
	}
}

func TestLoadFrom_MalformedYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
