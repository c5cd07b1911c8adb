// Package game ties maze generation, search and replay into one playable
// board: it carves a maze at construction, runs a search on a key command,
// and advances the flood animation one step per tick.
//
// A Game is not safe for concurrent use; callers serialise access.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/grid"
	"github.com/katalvlaran/mazeflood/kruskal"
	"github.com/katalvlaran/mazeflood/scene"
	"github.com/katalvlaran/mazeflood/traverse"
)

// Columns derives the board width from its height.
func Columns(rows int) int {
	return rows * 10 / 6
}

// Game is one board plus its replay.
type Game struct {
	g      *grid.Grid
	replay *flood.Replay
	log    *zap.Logger
	obs    Observer
	last   *traverse.Result
	ticks  int
}

// New carves a rows × Columns(rows) maze and checks it is a spanning tree.
func New(rows int, opts ...Option) (*Game, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var gridOpts []grid.Option
	if o.seedSet {
		gridOpts = append(gridOpts, grid.WithSeed(o.seed))
	}
	g, err := grid.New(rows, Columns(rows), gridOpts...)
	if err != nil {
		return nil, fmt.Errorf("game: new grid: %w", err)
	}

	began := time.Now()
	accepted, err := kruskal.Generate(g, kruskal.WithOnReject(func(e grid.Edge) {
		if ce := o.log.Check(zap.DebugLevel, "wall kept"); ce != nil {
			ce.Write(zap.Int("a", e.A), zap.Int("b", e.B), zap.Int("weight", e.Weight))
		}
	}))
	if err != nil {
		return nil, fmt.Errorf("game: generate: %w", err)
	}
	if err := g.Validate(); err != nil {
		o.log.Error("generated maze is not a spanning tree", zap.Error(err))
		return nil, fmt.Errorf("game: %w", err)
	}
	took := time.Since(began)

	o.log.Info("maze generated",
		zap.Int("rows", g.Rows()),
		zap.Int("cols", g.Cols()),
		zap.Int64("seed", g.Seed()),
		zap.Int("passages", len(accepted)),
		zap.Duration("took", took),
	)
	o.observer.Generated(g.Rows(), g.Cols(), took)

	return &Game{
		g:      g,
		replay: flood.New(g),
		log:    o.log,
		obs:    o.observer,
	}, nil
}

// Grid exposes the board. Mutating it while a replay runs corrupts the replay.
func (gm *Game) Grid() *grid.Grid { return gm.g }

// State returns the replay state.
func (gm *Game) State() flood.State { return gm.replay.State() }

// Active reports whether the replay still has steps to take.
func (gm *Game) Active() bool { return gm.replay.Active() }

// Last returns the most recent search result, or nil before the first search.
func (gm *Game) Last() *traverse.Result { return gm.last }

// Ticks returns how many ticks changed the board since the last search.
func (gm *Game) Ticks() int { return gm.ticks }

// Scene snapshots the board for rendering.
func (gm *Game) Scene() scene.Scene { return scene.Build(gm.g) }

// HandleKey runs a search for "b" (breadth-first) or "d" (depth-first) and
// loads it into the replay, discarding any animation in progress. Any other
// key is ignored and reported as not handled.
func (gm *Game) HandleKey(key string) (bool, error) {
	var d traverse.Discipline
	switch key {
	case KeyBreadthFirst:
		d = traverse.FIFO
	case KeyDepthFirst:
		d = traverse.LIFO
	default:
		return false, nil
	}
	return true, gm.Search(d)
}

// Search runs discipline d and starts replaying it.
func (gm *Game) Search(d traverse.Discipline) error {
	began := time.Now()
	res, err := traverse.Search(gm.g, d)
	if err != nil {
		return fmt.Errorf("game: search: %w", err)
	}
	took := time.Since(began)
	gm.obs.Searched(res, took)

	gm.last = res
	gm.ticks = 0
	if !gm.replay.Load(res) {
		gm.log.Error("goal unreachable",
			zap.Stringer("discipline", d),
			zap.Int("visited", len(res.History)),
		)
		return fmt.Errorf("%w: %s visited %d cells", ErrGoalUnreachable, d, len(res.History))
	}
	gm.log.Info("search finished",
		zap.Stringer("discipline", d),
		zap.Int("visited", len(res.History)),
		zap.Int("path_len", res.PathLen()),
		zap.Duration("took", took),
	)
	return nil
}

// Tick advances the replay by one step and returns its new state.
func (gm *Game) Tick() flood.State {
	before := gm.replay.State()
	if !gm.Active() {
		return before
	}
	after := gm.replay.Tick()
	gm.ticks++
	gm.obs.Ticked(after)
	if after != before {
		gm.log.Debug("replay state changed",
			zap.Stringer("from", before),
			zap.Stringer("to", after),
			zap.Int("ticks", gm.ticks),
		)
	}
	return after
}

// Finish ticks until the replay stops or maxTicks is reached (<= 0 means no
// limit) and returns the ticks taken.
func (gm *Game) Finish(maxTicks int) int {
	n := 0
	for gm.Active() && (maxTicks <= 0 || n < maxTicks) {
		gm.Tick()
		n++
	}
	return n
}
