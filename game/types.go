package game

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/mazeflood/flood"
	"github.com/katalvlaran/mazeflood/traverse"
)

// DefaultRows is the board height used when none is configured.
const DefaultRows = 20

// Key commands.
const (
	KeyBreadthFirst = "b"
	KeyDepthFirst   = "d"
)

// ErrGoalUnreachable is returned by HandleKey when a search fails to reach the
// goal. On a carved maze this means the board is broken.
var ErrGoalUnreachable = errors.New("game: goal unreachable")

// Observer receives game events. Implementations must be cheap; they run
// inline with generation, search and ticks.
type Observer interface {
	Generated(rows, cols int, took time.Duration)
	Searched(res *traverse.Result, took time.Duration)
	Ticked(state flood.State)
}

type nopObserver struct{}

func (nopObserver) Generated(int, int, time.Duration)        {}
func (nopObserver) Searched(*traverse.Result, time.Duration) {}
func (nopObserver) Ticked(flood.State)                       {}

// Option configures a Game.
type Option func(*options)

type options struct {
	seed     int64
	seedSet  bool
	log      *zap.Logger
	observer Observer
}

func defaultOptions() options {
	return options{log: zap.NewNop(), observer: nopObserver{}}
}

// WithSeed fixes the maze seed. Without it the seed comes from the clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed, o.seedSet = seed, true
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithObserver registers an event observer. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}
