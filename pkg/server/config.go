package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds game-level configuration parameters, loaded from YAML.
type Config struct {
	MudName string `yaml:"mud_name"`
	Port    int    `yaml:"port"`

	// --- Web transport ---
	WebEnabled bool   `yaml:"web_enabled"`
	WebHost    string `yaml:"web_host"`
	WebPort    int    `yaml:"web_port"`

	// --- Data files ---
	WorldFile   string `yaml:"world_file"`   // YAML world definition
	SocialsFile string `yaml:"socials_file"` // YAML custom socials, hot-reloaded
	StorePath   string `yaml:"store_path"`   // bbolt database for in-game socials

	// --- Connection handling ---
	IdleTimeout int    `yaml:"idle_timeout"` // seconds, 0 = never
	WelcomeText string `yaml:"welcome_text"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MudName:     "gosoul",
		Port:        6250,
		WebHost:     "",
		WebPort:     8080,
		IdleTimeout: 3600,
		WelcomeText: "Welcome. What is your name?",
	}
}

// LoadConfig reads a YAML config file, layered over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("config: invalid port %d", cfg.Port)
	}
	return cfg, nil
}

// IdleDuration returns the idle timeout as a duration, zero when disabled.
func (c Config) IdleDuration() time.Duration {
	if c.IdleTimeout <= 0 {
		return 0
	}
	return time.Duration(c.IdleTimeout) * time.Second
}
