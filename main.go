package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vinom-posemaze/actuator"
	"github.com/beka-birhanu/vinom-posemaze/api"
	gameapi "github.com/beka-birhanu/vinom-posemaze/api/game"
	api_i "github.com/beka-birhanu/vinom-posemaze/api/i"
	"github.com/beka-birhanu/vinom-posemaze/api/identity"
	poseapi "github.com/beka-birhanu/vinom-posemaze/api/pose"
	statsapi "github.com/beka-birhanu/vinom-posemaze/api/stats"
	"github.com/beka-birhanu/vinom-posemaze/config"
	"github.com/beka-birhanu/vinom-posemaze/gesture"
	logger "github.com/beka-birhanu/vinom-posemaze/infrastruture/log"
	"github.com/beka-birhanu/vinom-posemaze/infrastruture/runstore"
	"github.com/beka-birhanu/vinom-posemaze/infrastruture/token"
	"github.com/beka-birhanu/vinom-posemaze/render"
	"github.com/beka-birhanu/vinom-posemaze/service"
	"github.com/beka-birhanu/vinom-posemaze/service/i"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	appLogger    *logger.Logger
	mongoClient  *mongo.Client
	redisClient  *redis.Client
	runStore     i.RunStore
	tracker      *service.CompletionTracker
	device       i.Actuator
	classifier   *gesture.Classifier
	session      *service.GameSession
	loop         *service.Loop
	jwtTokenizer i.Tokenizer
	authService  i.Authenticator
	router       *api.Router
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{Addr: config.Envs.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMongo(ctx context.Context) {
	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(config.Envs.MongoURI))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRunStore(ctx context.Context) {
	switch config.Envs.RunStore {
	case "", "file":
		runStore = runstore.NewFileStore(config.Envs.HistoryFile)
	case "redis":
		initRedis(ctx)
		runStore = runstore.NewRedisStore(redisClient, config.Envs.RedisKey, config.Envs.RedisMaxRuns)
	case "mongo":
		initMongo(ctx)
		runStore = runstore.NewMongoStore(mongoClient, config.Envs.DBName, "runs")
	default:
		appLogger.Error(fmt.Sprintf("Unknown RUN_STORE %q, want file, redis or mongo", config.Envs.RunStore))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Run store initialized (%s)", config.Envs.RunStore))
}

func initTracker() {
	var err error
	tracker, err = service.NewCompletionTracker(runStore, newLogger("RUNSTORE", config.ColorCyan))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating completion tracker: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Completion tracker initialized")
}

func initActuator() {
	device = actuator.Open(config.Envs.SerialPort, config.Envs.SerialBaud, newLogger("ACTUATOR", config.ColorYellow))
	appLogger.Info("Actuator initialized")
}

func initClassifier() {
	cfg := gesture.DefaultConfig()
	if path := config.Envs.GestureProfile; path != "" {
		var err error
		cfg, err = gesture.LoadProfile(path)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Loading gesture profile: %v", err))
			os.Exit(1)
		}
	}

	var err error
	classifier, err = gesture.NewClassifier(cfg, gesture.Options{
		Logger: newLogger("GESTURE", config.ColorMagenta),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating gesture classifier: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Gesture classifier initialized (%s mode)", cfg.Mode))
}

func initSession() {
	var err error
	session, err = service.NewGameSession(service.SessionConfig{
		Cols:        config.Envs.GridCols,
		Rows:        config.Envs.GridRows,
		TileSize:    config.Envs.TileSize,
		PlayerSize:  config.Envs.PlayerSize,
		PlayerSpeed: config.Envs.PlayerSpeed,
		Seed:        config.Envs.MazeSeed,
		Tracker:     tracker,
		Actuator:    device,
		Logger:      newLogger("GAME", config.ColorBlue),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game session: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game session initialized")
}

func initLoop() {
	var err error
	loop, err = service.NewLoop(session, classifier, config.Envs.TickRate, appLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game loop: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game loop initialized")
}

func initJWTTokenizer() {
	secret := config.Envs.JWTSecret
	if secret == "" {
		bytes := make([]byte, 32)
		if _, err := rand.Read(bytes); err != nil {
			appLogger.Error(fmt.Sprintf("Generating JWT secret: %v", err))
			os.Exit(1)
		}
		secret = base64.URLEncoding.EncodeToString(bytes)
		appLogger.Warning("JWT_SECRET not set, operator tokens will not survive a restart")
	}

	var err error
	jwtTokenizer, err = token.NewJwtService(secret, config.Envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		os.Exit(1)
	}
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(config.Envs.OperatorKeyHash, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	if config.Envs.OperatorKeyHash == "" {
		appLogger.Warning("OPERATOR_KEY_HASH not set, operator routes are locked")
	}
	appLogger.Info("Auth service initialized")
}

func initRouter() {
	httpLogger := newLogger("HTTP", config.ColorBlue)
	router = api.NewRouter(api.Config{
		Addr:    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL: "/api",
		Mode:    config.Envs.GinMode,
		Controllers: []api_i.Controller{
			identity.NewIdentityServer(authService),
			gameapi.NewGameController(loop),
			statsapi.NewRunsController(tracker),
			poseapi.NewPoseController(classifier, httpLogger),
		},
		AuthorizationMiddleware: identity.Authoriz(jwtTokenizer),
	})
	appLogger.Info("Router initialized")
}

func runWindow(ctx context.Context) error {
	width := config.Envs.GridCols * config.Envs.TileSize
	height := config.Envs.GridRows * config.Envs.TileSize

	game, err := render.New(ctx, loop, width, height)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Pose Maze")
	ebiten.SetTPS(config.Envs.TickRate)
	defer session.Wait()
	return ebiten.RunGame(game)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initRunStore(ctx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	initTracker()
	initActuator()
	defer device.Close()

	initClassifier()
	initSession()
	initLoop()
	initJWTTokenizer()
	initAuthService()
	initRouter()

	go func() {
		if err := router.Run(ctx); err != nil {
			appLogger.Error(fmt.Sprintf("Serving HTTP: %v", err))
			stop()
		}
	}()

	var err error
	if config.Envs.Headless {
		appLogger.Info("Running headless")
		err = loop.Run(ctx)
	} else {
		err = runWindow(ctx)
	}
	stop()

	if err != nil {
		appLogger.Error(fmt.Sprintf("Game loop stopped: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Shut down")
}
