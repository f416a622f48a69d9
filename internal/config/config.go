// Package config loads bot configuration from the config file and
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "taskbot"

	// ConfigFile is the configuration filename.
	ConfigFile = "config.yaml"

	// TokenEnv is the environment variable that overrides the file token.
	TokenEnv = "BOT_TOKEN"

	// DefaultPollTimeout is the long-poll timeout in seconds.
	DefaultPollTimeout = 30
)

// Config holds bot configuration.
type Config struct {
	// Token is the Telegram bot token.
	Token string `yaml:"token"`

	// PollTimeout is the long-poll timeout in seconds.
	PollTimeout int `yaml:"poll_timeout"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// Load reads the config file from configDir (default: XDG config dir)
// if it exists, then applies the BOT_TOKEN environment override.
// A missing config file is not an error; a missing token is.
func Load(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{PollTimeout: DefaultPollTimeout}

	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if cfg.PollTimeout <= 0 {
			cfg.PollTimeout = DefaultPollTimeout
		}
	case os.IsNotExist(err):
		// No config file; env must carry the token.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if tok := os.Getenv(TokenEnv); tok != "" {
		cfg.Token = tok
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("%s is not set and no token in %s", TokenEnv, path)
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}
