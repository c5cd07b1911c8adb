package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
	assert.Empty(t, cfg.Source)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "mazeflood.toml", `
[maze]
rows = 12
seed = 99

[game]
tick_rate = "25ms"
search = "d"

[http]
addr = ":9000"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, 12, cfg.Maze.Rows)
	assert.Equal(t, int64(99), cfg.Maze.Seed)
	assert.Equal(t, 25*time.Millisecond, cfg.Game.TickRate)
	assert.Equal(t, "d", cfg.Game.Search)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	// untouched keys keep their defaults
	assert.Equal(t, "/api", cfg.HTTP.BaseURL)
	assert.Equal(t, 500, cfg.Render.Width)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_BadTOML(t *testing.T) {
	_, err := Load(writeFile(t, "bad.toml", "[maze\nrows = "))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"rows":         func(c *Config) { c.Maze.Rows = 0 },
		"search":       func(c *Config) { c.Game.Search = "x" },
		"game tick":    func(c *Config) { c.Game.TickRate = 0 },
		"http tick":    func(c *Config) { c.HTTP.TickRate = -time.Second },
		"render width": func(c *Config) { c.Render.Width = 0 },
		"border":       func(c *Config) { c.Render.Border = -1 },
		"max games":    func(c *Config) { c.HTTP.MaxGames = 0 },
		"max rows":     func(c *Config) { c.HTTP.MaxRows = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaults()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestFromEnv(t *testing.T) {
	path := writeFile(t, "mazeflood.toml", "[maze]\nrows = 8\n")
	dotenv := writeFile(t, ".env", "MAZEFLOOD_SEED=1234\nMAZEFLOOD_ROWS=40\n")

	t.Setenv(EnvConfig, path)
	t.Setenv(EnvRows, "15")
	t.Setenv(EnvAddr, ":7070")
	t.Setenv(EnvGin, "")

	cfg, err := FromEnv(dotenv)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, 15, cfg.Maze.Rows, "process env wins over .env and file")
	assert.Equal(t, int64(1234), cfg.Maze.Seed, ".env fills what the process env lacks")
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "release", cfg.HTTP.GinMode, "empty counts as unset")
}

func TestFromEnv_Errors(t *testing.T) {
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "missing.toml"))

	t.Setenv(EnvRows, "many")
	_, err := FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, EnvRows)

	t.Setenv(EnvRows, "-3")
	_, err = FromEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "maze.rows")
}
