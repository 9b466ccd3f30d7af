package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string // Host IP for the HTTP server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	OperatorKeyHash string // Bcrypt hash of the operator key

	GridCols    int   // Number of maze columns
	GridRows    int   // Number of maze rows
	TileSize    int   // Size of a cell in pixels
	PlayerSize  int   // Side of the player square in pixels
	PlayerSpeed int   // Pixels travelled per tick
	TickRate    int   // Game ticks per second
	MazeSeed    int64 // Seed for maze generation, 0 means time seeded
	Headless    bool  // Run the tick loop without a window

	GestureProfile string // Path of a YAML gesture profile

	SerialPort string // Actuator device path
	SerialBaud int    // Actuator baud rate

	RunStore     string // Run history backend: file, redis or mongo
	HistoryFile  string // Path of the line-oriented history file
	RedisAddr    string // Address of the redis server
	RedisKey     string // Sorted set key holding runs
	RedisMaxRuns int    // Number of runs kept in redis
	MongoURI     string // MongoDB connection URI
	DBName       string // Name of the database
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
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "vinom-posemaze"),
		OperatorKeyHash: getEnvWithDefault("OPERATOR_KEY_HASH", ""),

		GridCols:    getEnvAsIntWithDefault("GRID_COLS", 10),
		GridRows:    getEnvAsIntWithDefault("GRID_ROWS", 7),
		TileSize:    getEnvAsIntWithDefault("TILE_SIZE", 100),
		PlayerSize:  getEnvAsIntWithDefault("PLAYER_SIZE", 30),
		PlayerSpeed: getEnvAsIntWithDefault("PLAYER_SPEED", 5),
		TickRate:    getEnvAsIntWithDefault("TICK_RATE", 60),
		MazeSeed:    int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		Headless:    getEnvAsBoolWithDefault("HEADLESS", false),

		GestureProfile: getEnvWithDefault("GESTURE_PROFILE", ""),

		SerialPort: getEnvWithDefault("SERIAL_PORT", ""),
		SerialBaud: getEnvAsIntWithDefault("SERIAL_BAUD", 115200),

		RunStore:     getEnvWithDefault("RUN_STORE", "file"),
		HistoryFile:  getEnvWithDefault("HISTORY_FILE", "completion_times.txt"),
		RedisAddr:    getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisKey:     getEnvWithDefault("REDIS_KEY", "posemaze:runs"),
		RedisMaxRuns: getEnvAsIntWithDefault("REDIS_MAX_RUNS", 1000),
		MongoURI:     getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:       getEnvWithDefault("DB_NAME", "posemaze"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("%s[APP]%s %s[FATAL]%s Environment variable %s must be an integer: %v", ColorGreen, ColorReset, LogErrorColor, ColorReset, key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves a boolean environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("%s[APP]%s %s[FATAL]%s Environment variable %s must be a boolean: %v", ColorGreen, ColorReset, LogErrorColor, ColorReset, key, err)
	}
	return value
}
