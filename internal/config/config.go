package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"binclock/internal/domain"
)

//go:embed sample_config.toml
var sampleConfig string

// Config holds every runtime setting of the clock.
type Config struct {
	Mode             string `toml:"mode"`
	Locale           string `toml:"locale"`
	Timezone         string `toml:"timezone"`
	UTCOffsetMinutes int    `toml:"utc_offset_minutes"`
	Color            string `toml:"color"`
	ASCII            bool   `toml:"ascii"`
	ShowSeconds      bool   `toml:"show_seconds"`
	LogLevel         string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:        "bcd",
		Color:       "auto",
		ShowSeconds: true,
		LogLevel:    "warn",
	}
}

// DefaultPath resolves the user config file, honoring XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "binclock", "config.toml"), nil
}

// Load reads the config file at path (or the default path when empty),
// applies BINCLOCK_* environment overrides and validates the result.
// A missing file is not an error: defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Config{}, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays BINCLOCK_* environment variables. A .env file is
// optional, for development runs.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("BINCLOCK_MODE"); ok {
		c.Mode = v
	}
	if v, ok := os.LookupEnv("BINCLOCK_LOCALE"); ok {
		c.Locale = v
	}
	if v, ok := os.LookupEnv("BINCLOCK_TIMEZONE"); ok {
		c.Timezone = v
	}
	if v, ok := os.LookupEnv("BINCLOCK_UTC_OFFSET_MINUTES"); ok {
		if minutes, err := strconv.Atoi(v); err == nil {
			c.UTCOffsetMinutes = minutes
		}
	}
	if v, ok := os.LookupEnv("BINCLOCK_COLOR"); ok {
		c.Color = v
	}
	if v, ok := os.LookupEnv("BINCLOCK_ASCII"); ok {
		c.ASCII = parseBool(v, c.ASCII)
	}
	if v, ok := os.LookupEnv("BINCLOCK_SHOW_SECONDS"); ok {
		c.ShowSeconds = parseBool(v, c.ShowSeconds)
	}
	if v, ok := os.LookupEnv("BINCLOCK_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
}

// Validate applies every rule on the loaded configuration.
func (c *Config) Validate() error {
	if _, err := domain.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: mode %q: %w", c.Mode, err)
	}

	switch strings.ToLower(strings.TrimSpace(c.Color)) {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("config: color must be auto, always or never (got %q)", c.Color)
	}

	if c.UTCOffsetMinutes < -14*60 || c.UTCOffsetMinutes > 14*60 {
		return fmt.Errorf("config: utc_offset_minutes %d: %w", c.UTCOffsetMinutes, domain.ErrBadUTCOffset)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level must be debug, info, warn or error (got %q)", c.LogLevel)
	}

	return nil
}

// WriteSample writes the annotated sample config to path, creating parent
// directories. It refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists: %w", path, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Render serializes the effective configuration as TOML for `config show`.
func (c Config) Render() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("config: marshal: %w", err)
	}
	return string(out), nil
}

func parseBool(v string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}
