package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("screen = %dx%d, want 800x600", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Player.Speed != 200 {
		t.Errorf("player speed = %f, want 200", cfg.Player.Speed)
	}
	if cfg.Obstacles.Count != 5 {
		t.Errorf("obstacle count = %d, want 5", cfg.Obstacles.Count)
	}

	// Derived values
	if cfg.Derived.ArenaHalfW != 400 || cfg.Derived.ArenaHalfH != 300 {
		t.Errorf("arena half = %fx%f, want 400x300", cfg.Derived.ArenaHalfW, cfg.Derived.ArenaHalfH)
	}
	if cfg.Derived.PlayerHalf != 25 {
		t.Errorf("player half = %f, want 25", cfg.Derived.PlayerHalf)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("player:\n  speed: 120\nscreen:\n  width: 1024\n  height: 768\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Player.Speed != 120 {
		t.Errorf("player speed = %f, want override 120", cfg.Player.Speed)
	}
	// Untouched fields keep their defaults
	if cfg.Player.Size != 50 {
		t.Errorf("player size = %f, want default 50", cfg.Player.Size)
	}
	if cfg.Derived.ArenaHalfW != 512 {
		t.Errorf("arena half width = %f, want 512", cfg.Derived.ArenaHalfW)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero player size", "player:\n  size: 0\n"},
		{"negative speed", "player:\n  speed: -1\n"},
		{"zero dt", "physics:\n  dt: 0\n"},
		{"zero screen", "screen:\n  width: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
