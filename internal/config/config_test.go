package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}

	if cfg.ShowHidden {
		t.Error("ShowHidden = true, expected false by default")
	}
	if cfg.MaxDepth != 0 {
		t.Errorf("MaxDepth = %d, expected 0 (unlimited)", cfg.MaxDepth)
	}
	if !cfg.Color {
		t.Error("Color = false, expected true by default")
	}

	// Check default exclusions include common patterns
	expectedExclusions := []string{".git", "node_modules", "__pycache__"}
	for _, pattern := range expectedExclusions {
		found := false
		for _, exc := range cfg.Exclude {
			if exc == pattern {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected exclusion %q not found in defaults", pattern)
		}
	}
}

func TestLoadMissingConfig(t *testing.T) {
	// Create a temp dir to use as home (so we can control the config path)
	tempDir := t.TempDir()

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", origHome)

	// Load config - should return defaults when file missing
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed for missing config: %v", err)
	}
	if !cfg.Color {
		t.Error("Expected default Color=true for missing config")
	}
}

func TestLoadValidConfig(t *testing.T) {
	tempDir := t.TempDir()

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", origHome)

	configDir := filepath.Join(tempDir, ".dirwalk")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `
exclude:
  - vendor
show_hidden: true
max_depth: 3
color: false
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Exclude) != 1 || cfg.Exclude[0] != "vendor" {
		t.Errorf("Exclude = %v, expected [vendor]", cfg.Exclude)
	}
	if !cfg.ShowHidden {
		t.Error("ShowHidden = false, expected true")
	}
	if cfg.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, expected 3", cfg.MaxDepth)
	}
	if cfg.Color {
		t.Error("Color = true, expected false")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", origHome)

	configDir := filepath.Join(tempDir, ".dirwalk")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("exclude: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load succeeded on invalid YAML, expected error")
	}
}

func TestSaveAndReload(t *testing.T) {
	tempDir := t.TempDir()

	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	defer os.Setenv("HOME", origHome)

	cfg := DefaultConfig()
	cfg.MaxDepth = 5
	cfg.Exclude = []string{"target"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.MaxDepth != 5 {
		t.Errorf("MaxDepth = %d after reload, expected 5", loaded.MaxDepth)
	}
	if len(loaded.Exclude) != 1 || loaded.Exclude[0] != "target" {
		t.Errorf("Exclude = %v after reload, expected [target]", loaded.Exclude)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	expanded := ExpandPath("~/projects")
	if !strings.HasPrefix(expanded, home) {
		t.Errorf("ExpandPath(~/projects) = %q, expected prefix %q", expanded, home)
	}

	plain := ExpandPath("/absolute/path")
	if plain != "/absolute/path" {
		t.Errorf("ExpandPath changed absolute path: %q", plain)
	}
}
