package api

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazeflood/game"
	"github.com/katalvlaran/mazeflood/scene"
)

// GameController serves the game routes.
type GameController struct {
	reg     *Registry
	maxRows int
	png     scene.PNGOptions
	log     *zap.Logger
}

// NewGameController returns a controller over reg. Requests for more than
// maxRows rows are rejected.
func NewGameController(reg *Registry, maxRows int, png scene.PNGOptions, log *zap.Logger) *GameController {
	if log == nil {
		log = zap.NewNop()
	}
	return &GameController{reg: reg, maxRows: maxRows, png: png, log: log}
}

// RegisterPublic registers the game routes.
func (gc *GameController) RegisterPublic(route *gin.RouterGroup) {
	games := route.Group("/games")
	{
		games.POST("", gc.create)
		games.GET("/:id", gc.show)
		games.DELETE("/:id", gc.remove)
		games.POST("/:id/search/:algo", gc.search)
		games.POST("/:id/tick", gc.tick)
		games.GET("/:id/image.png", gc.image)
		games.GET("/:id/ascii", gc.ascii)
	}
}

// create carves a new maze.
func (gc *GameController) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Rows > gc.maxRows {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "rows must be at most " + strconv.Itoa(gc.maxRows)})
		return
	}

	var opts []game.Option
	if request.Seed != nil {
		opts = append(opts, game.WithSeed(*request.Seed))
	}
	id, err := gc.reg.Create(request.Rows, opts...)
	if errors.Is(err, ErrRegistryFull) {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		gc.log.Error("create game", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating game"})
		return
	}

	s, _ := gc.reg.get(id)
	var resp GameResponse
	s.do(func(*game.Game) { resp = newGameResponse(id, s) })
	ctx.JSON(http.StatusCreated, resp)
}

// lookup resolves the :id parameter, writing the error response itself.
func (gc *GameController) lookup(ctx *gin.Context) (uuid.UUID, *session, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return uuid.Nil, nil, false
	}
	s, ok := gc.reg.get(id)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return uuid.Nil, nil, false
	}
	return id, s, true
}

// show returns the game and its board.
func (gc *GameController) show(ctx *gin.Context) {
	id, s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	var resp SceneResponse
	s.do(func(gm *game.Game) {
		resp = SceneResponse{GameResponse: newGameResponse(id, s), Scene: gm.Scene()}
	})
	ctx.JSON(http.StatusOK, resp)
}

func (gc *GameController) remove(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}
	if !gc.reg.Delete(id) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// search runs bfs or dfs and restarts the replay. The raw key commands
// "b" and "d" are accepted too.
func (gc *GameController) search(ctx *gin.Context) {
	id, s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	key, known := searchKeys[ctx.Param("algo")]
	if !known {
		key = ctx.Param("algo")
	}

	var (
		handled bool
		err     error
		resp    GameResponse
	)
	s.do(func(gm *game.Game) {
		handled, err = gm.HandleKey(key)
		resp = newGameResponse(id, s)
	})
	switch {
	case !handled:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown search " + strconv.Quote(ctx.Param("algo"))})
	case errors.Is(err, game.ErrGoalUnreachable):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case err != nil:
		gc.log.Error("search", zap.Stringer("id", id), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while searching"})
	default:
		ctx.JSON(http.StatusAccepted, resp)
	}
}

// tick advances the replay by ?n= steps (default 1); ?n=0 plays it to the end.
func (gc *GameController) tick(ctx *gin.Context) {
	id, s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	n, err := strconv.Atoi(ctx.DefaultQuery("n", "1"))
	if err != nil || n < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "n must be a non-negative integer"})
		return
	}

	var resp GameResponse
	s.do(func(gm *game.Game) {
		gm.Finish(n)
		resp = newGameResponse(id, s)
	})
	ctx.JSON(http.StatusOK, resp)
}

// image renders the board as a PNG. ?width= overrides the canvas width.
func (gc *GameController) image(ctx *gin.Context) {
	_, s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	opts := gc.png
	if w := ctx.Query("width"); w != "" {
		width, err := strconv.Atoi(w)
		if err != nil || width < 2 || width > 4096 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "width must be between 2 and 4096"})
			return
		}
		opts.Width = width
	}

	var snap scene.Scene
	s.do(func(gm *game.Game) { snap = gm.Scene() })

	var buf bytes.Buffer
	if err := scene.PNG(&buf, snap, opts); err != nil {
		gc.log.Error("render png", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering"})
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (gc *GameController) ascii(ctx *gin.Context) {
	_, s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	var snap scene.Scene
	s.do(func(gm *game.Game) { snap = gm.Scene() })
	ctx.String(http.StatusOK, "%s", scene.ASCII(snap))
}
