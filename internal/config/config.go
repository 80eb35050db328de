package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/Ankush23056/taskwarrior/internal/engine"
	"github.com/Ankush23056/taskwarrior/internal/storage"
)

// ConfigPathEnv points at an alternative config file.
const ConfigPathEnv = "TASKWARRIOR_CONFIG"

// Config holds everything tw reads at startup.
type Config struct {
	// DBPath is the SQLite file backing the key-value store.
	DBPath string `yaml:"db_path" env:"TASKWARRIOR_DB"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"TASKWARRIOR_LOG_LEVEL"`

	Rules engine.Rules `yaml:"rules"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		dbPath = "taskwarrior.db"
	}
	return &Config{
		DBPath:   dbPath,
		LogLevel: "warn",
		Rules:    engine.DefaultRules(),
	}
}

// DefaultPath is $TASKWARRIOR_CONFIG or ~/.taskwarrior/config.yaml.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(ConfigPathEnv)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".taskwarrior", "config.yaml"), nil
}

// Load reads path on top of the defaults, then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBPath = expandHome(cfg.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("config: db_path is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.Rules.Validate()
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
