package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds server settings. Flags override the file; the file
// overrides these defaults.
type Config struct {
	Addr       string `yaml:"addr"`
	PersistDir string `yaml:"persist_dir"`
	LogLevel   string `yaml:"log_level"`  // debug|info|warn|error
	Difficulty string `yaml:"difficulty"` // easy|medium|hard|expert
	// Removed overrides Difficulty with an explicit carve depth when
	// non-zero; recognized range 0-81, clamped elsewhere.
	Removed int `yaml:"removed"`
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		PersistDir: "./data",
		LogLevel:   "info",
		Difficulty: "medium",
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
