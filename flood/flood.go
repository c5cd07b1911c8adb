// Package flood replays a finished search as an animation, one step per tick.
//
// A Replay first "floods" the board, marking each cell from the search history
// as searched in visit order, then walks the parent links back from the goal,
// marking each cell on the solution path. The start cell is where the walk
// stops and is never marked on-path.
//
//	Idle ──Load(found)──▶ Flooding ──queue empty──▶ PathWalking ──cursor==start──▶ Done
//	  ▲                                                                            │
//	  └──────────────────────────── Load(not found) ◀───────── Load(found) ────────┘
//
// Load always discards whatever animation is in flight and clears every
// cell's display state first; there is no merging of two replays.
package flood

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/mazeflood/grid"
	"github.com/katalvlaran/mazeflood/traverse"
)

// State is the replay's position in its animation.
type State int

const (
	// Idle holds no result; ticks do nothing.
	Idle State = iota
	// Flooding marks one history cell searched per tick.
	Flooding
	// PathWalking marks one path cell per tick, goal first.
	PathWalking
	// Done is terminal until the next Load.
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Flooding:
		return "flooding"
	case PathWalking:
		return "path-walking"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Replay animates one traversal.Result on a grid.
// It is not safe for concurrent use; a single tick source drives it.
type Replay struct {
	g      *grid.Grid
	state  State
	queue  []int
	parent map[int]int
	start  int
	cursor int
}

// New returns an Idle replay drawing on g.
func New(g *grid.Grid) *Replay {
	return &Replay{g: g, state: Idle, cursor: -1}
}

// State returns the current animation state.
func (r *Replay) State() State { return r.state }

// Remaining returns how many history cells are still to be flooded.
func (r *Replay) Remaining() int { return len(r.queue) }

// Cursor returns the next cell the path walk will mark, or -1 when idle.
func (r *Replay) Cursor() int { return r.cursor }

// Active reports whether a Tick would change anything.
func (r *Replay) Active() bool {
	return r.state == Flooding || r.state == PathWalking
}

// Load resets the board's display states and starts animating res.
// It reports whether res was loaded: a nil or not-found result leaves the
// replay Idle.
func (r *Replay) Load(res *traverse.Result) bool {
	r.g.ResetStates()
	r.queue, r.parent, r.cursor = nil, nil, -1
	if res == nil || !res.Found {
		r.state = Idle
		return false
	}
	r.queue = slices.Clone(res.History)
	r.parent = maps.Clone(res.Parent)
	r.start = res.Start
	r.cursor = res.Goal
	r.state = Flooding
	return true
}

// Tick advances the animation by one step and returns the resulting state.
//
// The tick that floods the last history cell also takes the first path step,
// so the walk begins without an idle frame in between.
func (r *Replay) Tick() State {
	switch r.state {
	case Flooding:
		if len(r.queue) > 0 {
			r.g.SetState(r.queue[0], grid.Searched)
			r.queue = r.queue[1:]
		}
		if len(r.queue) == 0 {
			r.state = PathWalking
			r.step()
		}
	case PathWalking:
		r.step()
	}
	return r.state
}

// step marks the cursor on-path and moves it to its parent.
func (r *Replay) step() {
	if r.cursor == r.start {
		r.state = Done
		return
	}
	r.g.SetState(r.cursor, grid.OnPath)
	next, ok := r.parent[r.cursor]
	if !ok {
		r.state = Done
		return
	}
	r.cursor = next
	if r.cursor == r.start {
		r.state = Done
	}
}

// Run ticks until the replay stops being active or maxTicks is reached, and
// returns the number of ticks taken. maxTicks <= 0 means no limit.
func (r *Replay) Run(maxTicks int) int {
	n := 0
	for r.Active() && (maxTicks <= 0 || n < maxTicks) {
		r.Tick()
		n++
	}
	return n
}
