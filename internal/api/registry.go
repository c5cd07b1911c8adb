package api

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazeflood/game"
	"github.com/katalvlaran/mazeflood/internal/metrics"
)

// ErrRegistryFull is returned by Create once MaxGames games are held.
var ErrRegistryFull = errors.New("api: game registry is full")

// session guards one game. The HTTP handlers and the ticker both go through
// its mutex.
type session struct {
	mu      sync.Mutex
	game    *game.Game
	created time.Time
}

// do runs fn with the session locked.
func (s *session) do(fn func(*game.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.game)
}

// Registry holds the games served over HTTP, keyed by uuid.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
	max      int
	log      *zap.Logger
	opts     []game.Option
}

// NewRegistry returns an empty registry holding at most maxGames games. The game
// options are passed to every game.New call.
func NewRegistry(maxGames int, log *zap.Logger, opts ...game.Option) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[uuid.UUID]*session),
		max:      maxGames,
		log:      log,
		opts:     opts,
	}
}

// Create carves a new maze and registers it.
func (r *Registry) Create(rows int, opts ...game.Option) (uuid.UUID, error) {
	r.mu.RLock()
	full := len(r.sessions) >= r.max
	r.mu.RUnlock()
	if full {
		return uuid.Nil, ErrRegistryFull
	}

	all := append(append([]game.Option{}, r.opts...), opts...)
	gm, err := game.New(rows, all...)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sessions) >= r.max {
		return uuid.Nil, ErrRegistryFull
	}
	r.sessions[id] = &session{game: gm, created: time.Now()}
	metrics.ActiveGames.Set(float64(len(r.sessions)))
	r.log.Info("game created", zap.Stringer("id", id), zap.Int("rows", rows))
	return id, nil
}

func (r *Registry) get(id uuid.UUID) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Delete drops a game. It reports whether the game existed.
func (r *Registry) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	metrics.ActiveGames.Set(float64(len(r.sessions)))
	r.log.Info("game deleted", zap.Stringer("id", id))
	return true
}

// Len returns the number of games held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// TickAll advances every game's replay by one step.
func (r *Registry) TickAll() {
	r.mu.RLock()
	sessions := make([]*session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	for _, s := range sessions {
		s.do(func(gm *game.Game) { gm.Tick() })
	}
}

// Run ticks every game at the given rate until ctx is done.
func (r *Registry) Run(ctx context.Context, rate time.Duration) {
	ticker := time.NewTicker(rate)
	defer ticker.Stop()
	r.log.Info("tick loop started", zap.Duration("rate", rate))
	for {
		select {
		case <-ctx.Done():
			r.log.Info("tick loop stopped")
			return
		case <-ticker.C:
			r.TickAll()
		}
	}
}
