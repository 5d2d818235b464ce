// Package config loads the optional trackfile configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides where the config file is looked up.
const EnvConfigPath = "TRACKFILE_CONFIG"

// Config is the TOML file's shape. All keys are optional.
type Config struct {
	// StoreDir is prepended to bare store names. A leading ~ means the
	// user's home directory.
	StoreDir string `toml:"store_dir"`

	UI UIConfig `toml:"ui"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	// Accent accepts an ANSI 256 index ("0" to "255") or a hex color
	// ("#RRGGBB" or "#RGB").
	Accent string `toml:"accent"`

	// CodeTheme names the chroma theme for fenced code blocks in docs.
	CodeTheme string `toml:"code_theme"`
}

// Path returns where the config is read from: $TRACKFILE_CONFIG when set,
// otherwise DefaultPath.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads the config from Path. A missing file is not an error; it
// yields a zero config.
func Load() (*Config, error) {
	p := Path()
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(p)
}

// LoadFrom reads and decodes one specific config file.
func LoadFrom(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// ExpandedStoreDir returns StoreDir with a leading ~ expanded. Only a bare
// ~ or a ~/ prefix expands; a tilde elsewhere in the path is literal.
func (c *Config) ExpandedStoreDir() string {
	dir := strings.TrimSpace(c.StoreDir)
	switch {
	case dir == "":
		return ""
	case dir == "~" || strings.HasPrefix(dir, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return dir
		}
		return filepath.Join(home, strings.TrimPrefix(dir, "~"))
	default:
		return dir
	}
}

// DefaultPath prefers ~/.config/trackfile/config.toml when it exists, then
// the platform config dir, then the working directory.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", "trackfile", "config.toml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "trackfile", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}
