package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Exclude holds basename patterns pruned during tree walks.
	Exclude []string `yaml:"exclude"`
	// ShowHidden lists dotfiles in the browser and list output.
	ShowHidden bool `yaml:"show_hidden"`
	// MaxDepth caps tree recursion; 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`
	// Color toggles colorized CLI output.
	Color bool `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Exclude: []string{
			".git",
			"node_modules",
			"__pycache__",
			".venv",
			".DS_Store",
		},
		ShowHidden: false,
		MaxDepth:   0,
		Color:      true,
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".dirwalk", "config.yaml")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unexpanded if home unavailable
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
