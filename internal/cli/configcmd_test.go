package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pablasso/pomo/internal/config"
)

func TestConfigSet_PersistsSettings(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := execute(t, "config", "set",
		"--focus-minutes", "30",
		"--theme", config.ThemeLight,
		"--sound=false",
		"--auto-start-breaks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Settings saved.") {
		t.Errorf("missing confirmation:\n%s", got)
	}

	settings, err := config.Load(AppName)
	if err != nil {
		t.Fatalf("loading saved settings: %v", err)
	}
	if settings.Schedule.FocusMinutes != 30 {
		t.Errorf("focus minutes = %d, want 30", settings.Schedule.FocusMinutes)
	}
	if settings.Schedule.Pomodoros != 4 {
		t.Errorf("untouched pomodoros = %d, want default 4", settings.Schedule.Pomodoros)
	}
	if settings.Theme != config.ThemeLight {
		t.Errorf("theme = %q, want %q", settings.Theme, config.ThemeLight)
	}
	if settings.Sound {
		t.Error("sound should be off after --sound=false")
	}
	if !settings.AutoStartBreaks {
		t.Error("auto-start-breaks should be on")
	}
}

func TestConfigSet_RejectsUnknownTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := execute(t, "config", "set", "--theme", "sepia")
	if err == nil {
		t.Fatal("expected an error for an unknown theme")
	}
	if !strings.Contains(err.Error(), "sepia") {
		t.Errorf("expected the bad theme in the error, got %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(os.Getenv("XDG_CONFIG_HOME"), AppName, "settings.yaml")); !os.IsNotExist(statErr) {
		t.Error("settings file should not be written on a validation error")
	}
}

func TestConfigShow_PrintsSavedValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := execute(t, "config", "set", "--pomodoros", "2", "--long-break-every", "2"); err != nil {
		t.Fatalf("saving settings: %v", err)
	}

	got, err := execute(t, "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"pomodoros", "2", "theme", "dark"} {
		if !strings.Contains(got, want) {
			t.Errorf("config output missing %q:\n%s", want, got)
		}
	}
}
