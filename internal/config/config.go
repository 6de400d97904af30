package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PipelineConfig carries the pipeline's configuration surface. The drivers
// read it here and pass the values down as explicit parameters; the
// pipeline itself never touches config files or the environment.
type PipelineConfig struct {
	Clusters int   `yaml:"clusters"`
	TopK     int   `yaml:"top_k"`
	Seed     int64 `yaml:"seed"`
}

// EmbedderConfig selects the vectorizer implementation.
type EmbedderConfig struct {
	Type string `yaml:"type"`
}

// ClustererConfig selects the clusterer implementation.
type ClustererConfig struct {
	Type string `yaml:"type"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Embedder  EmbedderConfig  `yaml:"embedder"`
	Clusterer ClustererConfig `yaml:"clusterer"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/detrag/config.yaml.
// If neither exists, it writes defaults to ~/.config/detrag/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "detrag", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Pipeline:  PipelineConfig{Clusters: 2, TopK: 3, Seed: 42},
		Embedder:  EmbedderConfig{Type: "tfidf"},
		Clusterer: ClustererConfig{Type: "kmeans"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Pipeline.Clusters == 0 {
		cfg.Pipeline.Clusters = 2
	}
	if cfg.Pipeline.TopK == 0 {
		cfg.Pipeline.TopK = 3
	}
	if cfg.Pipeline.Seed == 0 {
		cfg.Pipeline.Seed = 42
	}
}
