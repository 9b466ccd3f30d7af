package gameapi

import (
	"net/http"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/beka-birhanu/vinom-posemaze/service"
	"github.com/gin-gonic/gin"
)

// Loop is the part of the game loop the controller needs.
type Loop interface {
	Snapshot() service.Snapshot
	RequestRestart()
}

// GameController serves the session state and restart requests.
type GameController struct {
	loop Loop
}

func NewGameController(loop Loop) *GameController {
	return &GameController{loop: loop}
}

// RegisterPublic registers public routes.
func (gc *GameController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/game/state", gc.state)
}

// RegisterProtected registers operator routes.
func (gc *GameController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/game/restart", gc.restart)
}

func (gc *GameController) state(ctx *gin.Context) {
	snap := gc.loop.Snapshot()
	path := snap.Path
	if path == nil {
		path = game.Path{}
	}

	ctx.JSON(http.StatusOK, &StateResponse{
		Version:  snap.Version,
		Cols:     snap.Cols,
		Rows:     snap.Rows,
		Maze:     snap.MazeText,
		Player:   snap.PlayerCell,
		Goal:     snap.Goal,
		Path:     path,
		Next:     snap.Next,
		Percent:  snap.Percent,
		Elapsed:  snap.Clock,
		Finished: snap.Finished,
	})
}

func (gc *GameController) restart(ctx *gin.Context) {
	gc.loop.RequestRestart()
	ctx.JSON(http.StatusAccepted, gin.H{"message": "restart queued"})
}
