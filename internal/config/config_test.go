package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdelacour/tuikit/style"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
[theme]
primary = "#ff0000"

[startup]
group = 1
widget = 2
`)

	cfg, err := loadFrom([]string{path})
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", cfg.Theme.Primary)
	assert.Equal(t, 1, cfg.Startup.Group)
	assert.Equal(t, 2, cfg.Startup.Widget)
}

func TestLoadFrom_LaterPathWins(t *testing.T) {
	base := writeConfig(t, "[theme]\nprimary = \"#111111\"\nsecondary = \"#222222\"\n")
	override := writeConfig(t, "[theme]\nprimary = \"#333333\"\n")

	cfg, err := loadFrom([]string{base, override})
	require.NoError(t, err)
	assert.Equal(t, "#333333", cfg.Theme.Primary)
	assert.Equal(t, "#222222", cfg.Theme.Secondary)
}

func TestLoadFrom_MissingFilesIgnored(t *testing.T) {
	cfg, err := loadFrom([]string{"/nonexistent/config.toml"})
	require.NoError(t, err)
	assert.Empty(t, cfg.Theme.Primary)
	assert.Equal(t, 0, cfg.Startup.Group)
}

func TestApplyTheme(t *testing.T) {
	cfg := &Config{Theme: ThemeConfig{Primary: "#abcdef"}}
	base := style.Theme{
		Primary: lipgloss.Color("#000000"),
		FgBase:  lipgloss.Color("#ffffff"),
	}

	themed := cfg.ApplyTheme(base)
	assert.Equal(t, lipgloss.Color("#abcdef"), themed.Primary)
	assert.Equal(t, lipgloss.Color("#ffffff"), themed.FgBase)
}
