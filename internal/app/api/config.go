package api

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ekviron/orders-api/internal/platform/observability"
)

const envPrefix = "ORDERS_"

// Config carries the settings for the API process. Values are layered:
// defaults, then an optional YAML file (CONFIG_FILE), then ORDERS_*
// environment variables (double underscore separates nesting levels, e.g.
// ORDERS_LOG__LEVEL).
type Config struct {
	Port        int       `koanf:"port"`
	Environment string    `koanf:"environment"`
	PostgresDSN string    `koanf:"postgres_dsn"`
	Log         LogConfig `koanf:"log"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"`
	Format string        `koanf:"format"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains optional rolling log file settings.
type LogFileConfig struct {
	Path       string `koanf:"path"`
	MaxSizeMB  int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

func defaults() map[string]any {
	return map[string]any{
		"port":                 8080,
		"environment":          "local",
		"postgres_dsn":         "",
		"log.level":            "info",
		"log.format":           "json",
		"log.file.path":        "",
		"log.file.max_size":    100,
		"log.file.max_backups": 3,
		"log.file.max_age":     28,
	}
}

// LoadConfig reads layered configuration and validates basic constraints.
func LoadConfig() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}
	return cfg, nil
}

// envKey maps ORDERS_LOG__LEVEL to log.level and ORDERS_POSTGRES_DSN to
// postgres_dsn.
func envKey(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// PlatformLog converts the log section to the observability package's shape.
func (c LogConfig) PlatformLog() observability.LogConfig {
	return observability.LogConfig{
		Level:      c.Level,
		Format:     c.Format,
		FilePath:   c.File.Path,
		MaxSizeMB:  c.File.MaxSizeMB,
		MaxBackups: c.File.MaxBackups,
		MaxAgeDays: c.File.MaxAgeDays,
		Compress:   c.File.Compress,
	}
}
