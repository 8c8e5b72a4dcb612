package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	LogLevel string         `yaml:"log_level"`
}

type HTTPConfig struct {
	Port string `yaml:"port"`
}

type SnapshotConfig struct {
	// Path of the JSON snapshot file, rewritten after every mutation.
	Path string `yaml:"path"`
}

func Default() Config {
	return Config{
		HTTP:     HTTPConfig{Port: "5000"},
		Snapshot: SnapshotConfig{Path: "data.json"},
		LogLevel: "info",
	}
}

// Load builds the config from defaults, then the YAML file named by
// CONFIG_PATH (if any), then individual env vars. Later layers win.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.HTTP.Port = getEnv("HTTP_PORT", cfg.HTTP.Port)
	cfg.Snapshot.Path = getEnv("SNAPSHOT_PATH", cfg.Snapshot.Path)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
