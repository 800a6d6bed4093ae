package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/follow"
	httpServer "taskboard/internal/http"
	"taskboard/internal/logging"
	"taskboard/internal/profile"
	"taskboard/internal/ratelimit"
	"taskboard/internal/task"
	"taskboard/internal/upload"
	"taskboard/internal/user"
)

// @title           Taskboard API
// @version         1.0
// @description     A task-management REST API with user profiles, avatars and follow relationships.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	db, err := initDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	redisClient, err := initRedis(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	// Repositories
	userRepo := user.NewRepository(db)
	taskRepo := task.NewRepository(db)
	followRepo := follow.NewRepository(db)

	uploadStore, err := upload.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize upload store: %w", err)
	}

	rateLimiter := ratelimit.NewLimiter(redisClient)

	pasetoService, err := auth.NewPasetoService(cfg.Auth.PasetoKey)
	if err != nil {
		return fmt.Errorf("failed to initialize PASETO service: %w", err)
	}

	// Services
	authService := auth.NewService(userRepo, logger)
	profileService := profile.NewService(userRepo, followRepo, cfg.Upload.BaseURL)
	taskService := task.NewService(taskRepo)
	userService := user.NewService(userRepo)
	followService := follow.NewService(followRepo)

	// Handlers
	handlers := httpServer.Handlers{
		Auth:    auth.NewHandler(authService, pasetoService, rateLimiter, uploadStore, logger, cfg.Auth.AccessTokenDuration),
		Profile: profile.NewHandler(profileService, uploadStore),
		Task:    task.NewHandler(taskService),
		User:    user.NewHandler(userService),
		Follow:  follow.NewHandler(followService),
	}
	authMiddleware := auth.NewMiddleware(pasetoService)

	router := httpServer.NewRouter(cfg, handlers, authMiddleware, logger)

	serverAddr := ":" + cfg.Server.Port
	server := httpServer.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initDB opens the database connection and returns a Bun DB instance.
// The process refuses to start if the store is unreachable.
func initDB(cfg config.DatabaseConfig) (*bun.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return database.NewBunDB(sqlDB), nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
