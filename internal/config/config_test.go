package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/imgui"
	"github.com/go-theft-auto/imgui/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	conf, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)
}

func TestLoadOverridesDefaults(t *testing.T) {
	conf, err := config.Load(writeFile(t, `
font_size = 18
style = "gta"
log_level = "debug"

[window]
title = "demo"
vsync = false
`))
	require.NoError(t, err)
	assert.Equal(t, float32(18), conf.FontSize)
	assert.Equal(t, "demo", conf.Window.Title)
	assert.False(t, conf.Window.VSync)
	assert.Equal(t, 800, conf.Window.Width, "untouched keys keep the default")
	assert.True(t, conf.Multisample)
	assert.Equal(t, imgui.GTAStyle(), conf.GUIStyle())

	level, err := conf.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	for name, content := range map[string]string{
		"syntax":      "font_size = ",
		"unknown key": "fontsize = 12",
		"size":        "[window]\nwidth = 0",
		"font size":   "font_size = -1",
		"style":       `style = "neon"`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLevelRejectsUnknownNames(t *testing.T) {
	conf := config.Default()
	conf.LogLevel = "loud"
	_, err := conf.Level()
	assert.Error(t, err)
	_, err = conf.Logger()
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	conf := config.Default()
	conf.Window.Title = "saved"
	conf.Multisample = false
	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, conf.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, conf, loaded)
}
