// Command mazeflood carves a maze, searches it and replays the search.
//
// Usage:
//
//	mazeflood [play]   animate one search in the terminal
//	mazeflood serve    serve games over HTTP
//
// Settings come from mazeflood.toml (or $MAZEFLOOD_CONFIG), .env and the
// environment; see internal/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/mazeflood/game"
	"github.com/katalvlaran/mazeflood/internal/api"
	"github.com/katalvlaran/mazeflood/internal/config"
	"github.com/katalvlaran/mazeflood/internal/metrics"
	"github.com/katalvlaran/mazeflood/scene"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	mode := "play"
	if len(args) > 0 {
		mode = args[0]
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if cfg.Source == "" {
		log.Info("no config file found, using defaults")
	} else {
		log.Info("config loaded", zap.String("path", cfg.Source))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "play":
		return play(ctx, cfg, log, os.Stdout)
	case "serve":
		return serve(ctx, cfg, log)
	}
	return fmt.Errorf("unknown mode %q (want play or serve)", mode)
}

// play animates one search at the configured tick rate, then optionally
// writes the final board as a PNG.
func play(ctx context.Context, cfg *config.Config, log *zap.Logger, out io.Writer) error {
	opts := []game.Option{game.WithLogger(log.Named("game"))}
	if cfg.Maze.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Maze.Seed))
	}
	gm, err := game.New(cfg.Maze.Rows, opts...)
	if err != nil {
		return err
	}
	if _, err := gm.HandleKey(cfg.Game.Search); err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.Game.TickRate)
	defer ticker.Stop()

	for gm.Active() {
		if cfg.Game.MaxTicks > 0 && gm.Ticks() >= cfg.Game.MaxTicks {
			log.Info("tick limit reached", zap.Int("max_ticks", cfg.Game.MaxTicks))
			break
		}
		select {
		case <-ctx.Done():
			log.Info("interrupted", zap.Int("ticks", gm.Ticks()))
			return nil
		case <-ticker.C:
		}
		gm.Tick()
		if cfg.Render.ASCII {
			fmt.Fprint(out, "\033[H\033[2J", scene.ASCII(gm.Scene()))
		}
	}
	log.Info("replay finished", zap.Int("ticks", gm.Ticks()), zap.Stringer("state", gm.State()))

	if cfg.Render.Output == "" {
		return nil
	}
	return writePNG(cfg.Render, gm.Scene(), log)
}

func writePNG(cfg config.RenderConfig, s scene.Scene, log *zap.Logger) (err error) {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Output, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	if err := scene.PNG(f, s, scene.PNGOptions{Width: cfg.Width, Border: cfg.Border}); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	log.Info("image written", zap.String("path", cfg.Output))
	return nil
}

// serve runs the HTTP API and the shared tick loop until interrupted.
func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	reg := api.NewRegistry(cfg.HTTP.MaxGames, log.Named("registry"),
		game.WithLogger(log.Named("game")),
		game.WithObserver(metrics.Observer{}),
	)
	ctrl := api.NewGameController(reg, cfg.HTTP.MaxRows,
		scene.PNGOptions{Width: cfg.Render.Width, Border: cfg.Render.Border},
		log.Named("api"),
	)
	router := api.NewRouter(api.Config{
		Addr:        cfg.HTTP.Addr,
		BaseURL:     cfg.HTTP.BaseURL,
		GinMode:     cfg.HTTP.GinMode,
		Controllers: []api.Controller{ctrl},
		Logger:      log.Named("http"),
	})

	go reg.Run(ctx, cfg.HTTP.TickRate)
	return router.Run(ctx)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
