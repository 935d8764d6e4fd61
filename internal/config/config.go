// Package config loads the demo application's TOML configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tdelacour/tuikit/style"
)

type Config struct {
	Theme   ThemeConfig   `koanf:"theme"`
	Startup StartupConfig `koanf:"startup"`
}

// ThemeConfig overrides palette entries. Empty fields keep the built-in
// color.
type ThemeConfig struct {
	Primary    string `koanf:"primary"`
	Secondary  string `koanf:"secondary"`
	Foreground string `koanf:"foreground"`
	Error      string `koanf:"error"`
}

// StartupConfig selects the widget focused on first draw.
type StartupConfig struct {
	Group  int `koanf:"group"`
	Widget int `koanf:"widget"`
}

func Load() (*Config, error) {
	return loadFrom(getConfigPaths())
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Later paths win.
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "tuikit", "config.toml"),
		"config.toml",
	}
}

// ApplyTheme returns base with the configured overrides applied.
func (c *Config) ApplyTheme(base style.Theme) style.Theme {
	if c.Theme.Primary != "" {
		base.Primary = lipgloss.Color(c.Theme.Primary)
	}
	if c.Theme.Secondary != "" {
		base.Secondary = lipgloss.Color(c.Theme.Secondary)
	}
	if c.Theme.Foreground != "" {
		base.FgBase = lipgloss.Color(c.Theme.Foreground)
	}
	if c.Theme.Error != "" {
		base.Error = lipgloss.Color(c.Theme.Error)
	}
	return base
}
