package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds application-level configuration.
type Config struct {
	Username    string        `validate:"required,max=32"`
	FeedLimit   int           `validate:"gte=0,lte=100"`
	LogPath     string        `validate:"required"`
	LogLevel    string        `validate:"oneof=trace debug info warn error"`
	MockLatency time.Duration `validate:"gte=0,lte=10s"`
}

const (
	defaultConfigPath = "~/.config/terminalreels/config.toml"
	defaultLogPath    = "~/.local/state/terminalreels/terminalreels.log"
	defaultUsername   = "you"
	defaultFeedLimit  = 0
	defaultLogLevel   = "info"
)

var validate = validator.New()

type fileConfig struct {
	Username    string `toml:"username"`
	FeedLimit   *int   `toml:"feed_limit"`
	LogPath     string `toml:"log_path"`
	LogLevel    string `toml:"log_level"`
	MockLatency string `toml:"mock_latency"`
}

// Load reads the TOML config file, then applies environment overrides.
//
//	TERMINALREELS_CONFIG     config file path when path is empty
//	                         (default: ~/.config/terminalreels/config.toml)
//	TERMINALREELS_LOG_LEVEL  overrides log_level
//	TERMINALREELS_USERNAME   overrides username
//
// A missing file yields defaults. A malformed one is an error.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv("TERMINALREELS_CONFIG")
	}
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Username:  defaultUsername,
		FeedLimit: defaultFeedLimit,
		LogPath:   defaultLogPath,
		LogLevel:  defaultLogLevel,
	}

	data, err := os.ReadFile(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := cfg.merge(data); err != nil {
			return Config{}, err
		}
	}

	if v := strings.TrimSpace(os.Getenv("TERMINALREELS_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("TERMINALREELS_USERNAME")); v != "" {
		cfg.Username = v
	}

	cfg.LogPath, err = expandPath(cfg.LogPath)
	if err != nil {
		return Config{}, err
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) merge(data []byte) error {
	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if v := strings.TrimSpace(raw.Username); v != "" {
		c.Username = v
	}
	if raw.FeedLimit != nil {
		c.FeedLimit = *raw.FeedLimit
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		c.LogPath = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.MockLatency); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: mock_latency: %w", err)
		}
		c.MockLatency = d
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
