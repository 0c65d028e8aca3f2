package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != DefaultAppConfig() {
		t.Errorf("embedded config = %+v\nwant %+v", cfg, DefaultAppConfig())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.yaml")
	data := "leaderboard:\n  path: /tmp/board.txt\ntiming:\n  transition_ms: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Leaderboard.Path != "/tmp/board.txt" {
		t.Errorf("Leaderboard.Path = %q", cfg.Leaderboard.Path)
	}
	if cfg.Leaderboard.UnitLabel != "очков" || cfg.Leaderboard.RecentLimit != 10 {
		t.Errorf("missing leaderboard fields not defaulted: %+v", cfg.Leaderboard)
	}
	if cfg.Timing.TransitionDelay() != 0 {
		t.Errorf("TransitionDelay() = %v, want explicit 0", cfg.Timing.TransitionDelay())
	}
	if cfg.Timing.TickRate != 60 || cfg.Timing.BlinkInterval() != 500*time.Millisecond {
		t.Errorf("timing not defaulted: %+v", cfg.Timing)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() of malformed file error = %v", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, AppDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("leaderboard:\n  unit_label: pts\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Leaderboard.UnitLabel != "pts" {
		t.Errorf("UnitLabel = %q, want user override", cfg.Leaderboard.UnitLabel)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~/.pharmacy-quest/leaderboard.txt", filepath.Join(home, ".pharmacy-quest", "leaderboard.txt")},
		{"~", home},
		{"/abs/path.txt", "/abs/path.txt"},
		{"relative.txt", "relative.txt"},
		{"~user/x", "~user/x"},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDefaultLevelsEmbedded(t *testing.T) {
	data := string(DefaultLevelsYAML())
	if !strings.Contains(data, "first_aid_kit") {
		t.Error("embedded level catalog looks incomplete")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}
