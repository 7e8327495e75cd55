package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	gameapi "github.com/beka-birhanu/vinom-maze/api/game"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/play"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient        *redis.Client
	scoreBoard         i.ScoreBoard
	mazeSessionManager i.MazeSessionManager
	mazeController     api_i.Controller
	router             *api.Router
	appLogger          *logger.Logger

	osExit = os.Exit
)

func closeRedis() {
	if redisClient == nil {
		return
	}
	if err := redisClient.Close(); err != nil {
		appLogger.Warning(fmt.Sprintf("Closing Redis client: %v", err))
	}
}

// exit closes open connections and terminates the process with code.
func exit(code int) {
	closeRedis()
	osExit(code)
}

func initRedis(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		appLogger.Warning("REDIS_ADDR not set, leaderboard disabled")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		exit(1)
		return
	}
	appLogger.Info("Connected to Redis")
}

func initScoreBoard() {
	if redisClient == nil {
		return
	}

	var err error
	scoreBoard, err = sortedstorage.NewRedisScoreBoard(redisClient, config.Envs.LeaderboardKey, config.Envs.LeaderboardSize, config.Envs.LeaderboardTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating score board: %v", err))
		exit(1)
		return
	}
	appLogger.Info("Score board initialized")
}

func initMazeSessionManager() {
	sessionLogger, err := logger.New("MAZE-SESSION", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze session logger: %v", err))
		exit(1)
		return
	}

	seed := config.Envs.MazeSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	c := &service.Config{
		Factory: func() (game.Controller, error) {
			return play.New(play.Config{Rows: config.Envs.MazeRows, Cols: config.Envs.MazeCols, Rand: rng})
		},
		Logger: sessionLogger,
	}
	if scoreBoard != nil {
		c.ScoreBoard = scoreBoard
	}

	mazeSessionManager, err = service.NewMazeSessionManager(c)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze session manager: %v", err))
		exit(1)
		return
	}
	appLogger.Info(fmt.Sprintf("Maze session manager initialized with seed %d", seed))
}

func initMazeController() {
	var err error
	mazeController, err = gameapi.NewMazeController(mazeSessionManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		exit(1)
		return
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initRedis(ctx)
	initScoreBoard()
	initMazeSessionManager()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		exit(1)
		return
	}
	closeRedis()
}
