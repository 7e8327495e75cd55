package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP                string // Host IP for the server
	RESTPort              int    // Port for the REST API
	GinMode               string // Mode for the Gin framework (e.g., release, debug, test)
	MazeRows              int    // Number of rows of every generated maze
	MazeCols              int    // Number of columns of every generated maze
	MazeSeed              int64  // Seed for maze generation; 0 seeds from the clock
	RedisAddr             string // Address of the Redis server backing the leaderboard; empty disables it
	RedisPassword         string // Password for the Redis server
	LeaderboardKey        string // Redis key of the leaderboard sorted set
	LeaderboardSize       int    // Number of entries kept on the leaderboard
	LeaderboardTTLSeconds int    // Lifetime of the leaderboard key
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:                getEnvWithDefault("HOST_IP", "localhost"),
		RESTPort:              getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:               getEnvWithDefault("GIN_MODE", "release"),
		MazeRows:              getEnvAsIntWithDefault("MAZE_ROWS", 20),
		MazeCols:              getEnvAsIntWithDefault("MAZE_COLS", 20),
		MazeSeed:              int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		RedisAddr:             getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:         getEnvWithDefault("REDIS_PASSWORD", ""),
		LeaderboardKey:        getEnvWithDefault("LEADERBOARD_KEY", "maze:leaderboard"),
		LeaderboardSize:       getEnvAsIntWithDefault("LEADERBOARD_SIZE", 10),
		LeaderboardTTLSeconds: getEnvAsIntWithDefault("LEADERBOARD_TTL_SECONDS", 24*60*60),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer.
// It returns the default when the variable is not set and logs a fatal error when it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
