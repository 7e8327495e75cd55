package gameapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const leaderboardTimeout = 500 * time.Millisecond

// MazeController translates HTTP requests into maze session operations.
type MazeController struct {
	sessionManager i.MazeSessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(sm i.MazeSessionManager) (*MazeController, error) {
	if sm == nil {
		return nil, errors.New("session manager is required")
	}
	return &MazeController{sessionManager: sm}, nil
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	maze := route.Group("/maze")
	{
		maze.GET("", mc.state)
		maze.GET("/ascii", mc.ascii)
		maze.POST("/moves", mc.move)
		maze.POST("/reset", mc.reset)
		maze.GET("/leaderboard", mc.leaderboard)
	}
}

// state returns the current session snapshot.
func (mc *MazeController) state(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, mc.sessionManager.Snapshot())
}

// ascii returns the session drawn as text.
func (mc *MazeController) ascii(ctx *gin.Context) {
	ctx.String(http.StatusOK, mc.sessionManager.Render())
}

// move handles a single directional input.
func (mc *MazeController) move(ctx *gin.Context) {
	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := mc.sessionManager.Move(ctx, request.Direction)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, snap)
}

// reset handles a restart request.
func (mc *MazeController) reset(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, mc.sessionManager.Restart())
}

// leaderboard returns the best finished mazes.
func (mc *MazeController) leaderboard(ctx *gin.Context) {
	limit, err := strconv.ParseInt(ctx.DefaultQuery("limit", "0"), 10, 64)
	if err != nil || limit < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, leaderboardTimeout)
	defer cancel()

	scores, err := mc.sessionManager.Leaderboard(timeoutCtx, limit)
	if errors.Is(err, service.ErrScoreBoardDisabled) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	ctx.JSON(http.StatusOK, &LeaderboardResponse{Scores: scores})
}
