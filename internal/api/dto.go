package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazeflood/game"
	"github.com/katalvlaran/mazeflood/scene"
)

// CreateRequest asks for a new maze. Seed is optional.
type CreateRequest struct {
	Rows int    `json:"rows" binding:"required,min=1"`
	Seed *int64 `json:"seed"`
}

// SearchSummary describes the last search run on a game.
type SearchSummary struct {
	Discipline string `json:"discipline"`
	Found      bool   `json:"found"`
	Visited    int    `json:"visited"`
	PathLen    int    `json:"path_len"`
}

// GameResponse describes a game without its board.
type GameResponse struct {
	ID        uuid.UUID      `json:"id"`
	Rows      int            `json:"rows"`
	Cols      int            `json:"cols"`
	Seed      int64          `json:"seed"`
	State     string         `json:"state"`
	Ticks     int            `json:"ticks"`
	CreatedAt time.Time      `json:"created_at"`
	Search    *SearchSummary `json:"search,omitempty"`
}

// SceneResponse is a game plus a snapshot of its board.
type SceneResponse struct {
	GameResponse
	Scene scene.Scene `json:"scene"`
}

func newGameResponse(id uuid.UUID, s *session) GameResponse {
	g := s.game.Grid()
	resp := GameResponse{
		ID:        id,
		Rows:      g.Rows(),
		Cols:      g.Cols(),
		Seed:      g.Seed(),
		State:     s.game.State().String(),
		Ticks:     s.game.Ticks(),
		CreatedAt: s.created,
	}
	if res := s.game.Last(); res != nil {
		resp.Search = &SearchSummary{
			Discipline: res.Discipline.String(),
			Found:      res.Found,
			Visited:    len(res.History),
			PathLen:    res.PathLen(),
		}
	}
	return resp
}

// searchKeys maps route names to game key commands.
var searchKeys = map[string]string{
	"bfs":           game.KeyBreadthFirst,
	"breadth-first": game.KeyBreadthFirst,
	"dfs":           game.KeyDepthFirst,
	"depth-first":   game.KeyDepthFirst,
}
