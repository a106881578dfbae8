package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	MinutesDir string
	AuthorName string
	AuthorCode string
	FontDirs   []string // probed instead of the system defaults when set
}

type fileConfig struct {
	MinutesDir string   `toml:"minutes_dir"`
	AuthorName string   `toml:"author_name"`
	AuthorCode string   `toml:"author_code"`
	FontDirs   []string `toml:"font_dirs"`
}

func Load() (*Config, error) {
	cfg := &Config{
		MinutesDir: defaultMinutesDir(),
	}

	if configPath := configFilePath(); configPath != "" {
		var fc fileConfig
		if _, err := toml.DecodeFile(configPath, &fc); err == nil {
			if fc.MinutesDir != "" {
				cfg.MinutesDir = expandTilde(fc.MinutesDir)
			}
			cfg.AuthorName = fc.AuthorName
			cfg.AuthorCode = fc.AuthorCode
			for _, dir := range fc.FontDirs {
				cfg.FontDirs = append(cfg.FontDirs, expandTilde(dir))
			}
		}
	}

	applyEnvOverrides(cfg)

	// Ensure the minutes directory exists
	if err := os.MkdirAll(cfg.MinutesDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MINUTES_AUTHOR"); v != "" {
		cfg.AuthorName = v
	}
	if v := os.Getenv("MINUTES_AUTHOR_CODE"); v != "" {
		cfg.AuthorCode = v
	}
	if v := os.Getenv("MINUTES_DIR"); v != "" {
		cfg.MinutesDir = expandTilde(v)
	}
	if v := os.Getenv("MINUTES_FONT_DIRS"); v != "" {
		cfg.FontDirs = nil
		for _, dir := range strings.Split(v, string(os.PathListSeparator)) {
			if dir != "" {
				cfg.FontDirs = append(cfg.FontDirs, expandTilde(dir))
			}
		}
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "minutes")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "minutes")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultMinutesDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "minutes")
	}
	return filepath.Join(".", "minutes")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
