package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/mazegen/api"
	api_i "github.com/beka-birhanu/mazegen/api/i"
	mazeapi "github.com/beka-birhanu/mazegen/api/maze"
	"github.com/beka-birhanu/mazegen/config"
	"github.com/beka-birhanu/mazegen/infrastruture/archive"
	logger "github.com/beka-birhanu/mazegen/infrastruture/log"
	"github.com/beka-birhanu/mazegen/service"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	envs           config.Config
	redisClient    *redis.Client
	mazeArchive    i.MazeArchive
	mazeService    i.MazeGenerator
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func initConfig() {
	var err error
	envs, err = config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading configuration: %v", err))
		os.Exit(1)
	}
	gin.SetMode(envs.GinMode)
	appLogger.Info("Configuration loaded")
}

func initArchive(ctx context.Context) {
	var err error
	if envs.RedisAddr == "" {
		mazeArchive, err = archive.NewMemoryArchive(envs.ArchiveTTLSeconds)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating memory archive: %v", err))
			os.Exit(1)
		}
		appLogger.Warning("REDIS_ADDR not set, archiving mazes in memory")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
		DB:       envs.RedisDB,
	})
	if err = redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	mazeArchive, err = archive.NewRedisArchive(redisClient, envs.ArchiveTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating redis archive: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(service.MazeServiceConfig{
		Archive:      mazeArchive,
		Logger:       mazeLogger,
		MaxDimension: envs.MaxMazeDimension,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initConfig()
	initArchive(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initMazeService()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
