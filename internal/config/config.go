package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvConfig = "MAZEFLOOD_CONFIG"
	EnvRows   = "MAZEFLOOD_ROWS"
	EnvSeed   = "MAZEFLOOD_SEED"
	EnvAddr   = "MAZEFLOOD_ADDR"
	EnvGin    = "GIN_MODE"
)

// DefaultPath is the config file used when MAZEFLOOD_CONFIG is unset.
const DefaultPath = "mazeflood.toml"

type Config struct {
	Maze    MazeConfig    `toml:"maze"`
	Game    GameConfig    `toml:"game"`
	Render  RenderConfig  `toml:"render"`
	HTTP    HTTPConfig    `toml:"http"`
	Logging LoggingConfig `toml:"logging"`

	Source string `toml:"-"` // file the values came from; empty when defaults were used
}

type MazeConfig struct {
	Rows int   `toml:"rows"`
	Seed int64 `toml:"seed"` // 0 = seed from the clock
}

type GameConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	Search   string        `toml:"search"`    // "b" or "d"
	MaxTicks int           `toml:"max_ticks"` // 0 = until done
}

type RenderConfig struct {
	Output string `toml:"output"` // PNG written when play finishes; empty = none
	Width  int    `toml:"width"`
	Border int    `toml:"border"`
	ASCII  bool   `toml:"ascii"` // redraw the board in the terminal every frame
}

type HTTPConfig struct {
	Addr     string        `toml:"addr"`
	BaseURL  string        `toml:"base_url"`
	TickRate time.Duration `toml:"tick_rate"`
	GinMode  string        `toml:"gin_mode"`
	MaxGames int           `toml:"max_games"`
	MaxRows  int           `toml:"max_rows"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults. A missing file is not an error:
// the defaults come back with an empty Source.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// FromEnv loads the file named by MAZEFLOOD_CONFIG (or DefaultPath), applies
// environment overrides and validates the result. Variables may also come
// from dotenv files, ".env" by default; the process environment wins.
func FromEnv(dotenv ...string) (*Config, error) {
	lookup, err := envLookup(dotenv...)
	if err != nil {
		return nil, err
	}
	path := DefaultPath
	if p, ok := lookup(EnvConfig); ok {
		path = p
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	switch {
	case c.Maze.Rows < 1:
		return fmt.Errorf("maze.rows must be at least 1, got %d", c.Maze.Rows)
	case c.Game.Search != "b" && c.Game.Search != "d":
		return fmt.Errorf("game.search must be \"b\" or \"d\", got %q", c.Game.Search)
	case c.Game.TickRate <= 0:
		return fmt.Errorf("game.tick_rate must be positive, got %s", c.Game.TickRate)
	case c.HTTP.TickRate <= 0:
		return fmt.Errorf("http.tick_rate must be positive, got %s", c.HTTP.TickRate)
	case c.Render.Width < 1:
		return fmt.Errorf("render.width must be at least 1, got %d", c.Render.Width)
	case c.Render.Border < 0:
		return fmt.Errorf("render.border must not be negative, got %d", c.Render.Border)
	case c.HTTP.MaxGames < 1:
		return fmt.Errorf("http.max_games must be at least 1, got %d", c.HTTP.MaxGames)
	case c.HTTP.MaxRows < 1:
		return fmt.Errorf("http.max_rows must be at least 1, got %d", c.HTTP.MaxRows)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvRows); ok {
		rows, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvRows, err)
		}
		c.Maze.Rows = rows
	}
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvSeed, err)
		}
		c.Maze.Seed = seed
	}
	if v, ok := lookup(EnvAddr); ok {
		c.HTTP.Addr = v
	}
	if v, ok := lookup(EnvGin); ok {
		c.HTTP.GinMode = v
	}
	return nil
}

// envLookup merges dotenv files under the process environment. Empty values
// count as unset. Missing files are skipped.
func envLookup(files ...string) (func(string) (string, bool), error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	fileEnv := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		maps.Copy(fileEnv, m)
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok && v != ""
	}, nil
}

func defaults() *Config {
	return &Config{
		Maze: MazeConfig{
			Rows: 20,
		},
		Game: GameConfig{
			TickRate: 10 * time.Millisecond,
			Search:   "b",
		},
		Render: RenderConfig{
			Width: 500,
			ASCII: true,
		},
		HTTP: HTTPConfig{
			Addr:     "127.0.0.1:8080",
			BaseURL:  "/api",
			TickRate: 10 * time.Millisecond,
			GinMode:  "release",
			MaxGames: 64,
			MaxRows:  120,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
