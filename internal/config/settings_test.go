package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults come from paths", func(t *testing.T) {
		t.Setenv("COMBOS_STORE_PATH", "")
		t.Setenv("COMBOS_DOCUMENT_PATH", "")
		paths := PathsAt(t.TempDir())

		s, err := LoadSettings(paths, "")
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.StorePath != paths.Store {
			t.Errorf("StorePath = %s, want %s", s.StorePath, paths.Store)
		}
		if s.DocumentPath != paths.Document {
			t.Errorf("DocumentPath = %s, want %s", s.DocumentPath, paths.Document)
		}
		if s.LogLevel != "info" {
			t.Errorf("LogLevel = %s, want info", s.LogLevel)
		}
	})

	t.Run("config file in root overrides defaults", func(t *testing.T) {
		t.Setenv("COMBOS_STORE_PATH", "")
		paths := PathsAt(t.TempDir())
		content := "store_path: /srv/combos/shared.json\nlog_level: debug\n"
		if err := os.WriteFile(paths.Config, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		s, err := LoadSettings(paths, "")
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.StorePath != "/srv/combos/shared.json" {
			t.Errorf("StorePath = %s, want /srv/combos/shared.json", s.StorePath)
		}
		if s.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, want debug", s.LogLevel)
		}
	})

	t.Run("environment overrides config file", func(t *testing.T) {
		paths := PathsAt(t.TempDir())
		if err := os.WriteFile(paths.Config, []byte("store_path: /from/file.json\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		t.Setenv("COMBOS_STORE_PATH", "/from/env.json")

		s, err := LoadSettings(paths, "")
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.StorePath != "/from/env.json" {
			t.Errorf("StorePath = %s, want /from/env.json", s.StorePath)
		}
	})

	t.Run("explicit missing config file is an error", func(t *testing.T) {
		paths := PathsAt(t.TempDir())
		if _, err := LoadSettings(paths, filepath.Join(paths.Root, "nope.yaml")); err == nil {
			t.Error("LoadSettings should fail for a missing explicit config file")
		}
	})
}
