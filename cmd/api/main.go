package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/platefull/backend/config"
	"github.com/platefull/backend/internal/api"
	"github.com/platefull/backend/internal/database"
	"github.com/platefull/backend/internal/middleware"
	"github.com/platefull/backend/internal/router"
	"github.com/platefull/backend/internal/server"
	"github.com/platefull/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	recipeService := service.NewRecipeService(db)
	cartService := service.NewCartService(redisClient)
	orderService := service.NewOrderService(db, cartService)
	rewardService := service.NewRewardService(db)
	imageService := service.NewImageService(s3Config)

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window:    time.Minute,
		Limit:     cfg.RateLimit,
		KeyPrefix: "ratelimit",
	})

	engine := router.SetupRouter(router.Handlers{
		Auth:    api.NewAuthHandler(authService),
		Recipe:  api.NewRecipeHandler(recipeService, imageService, authService),
		Cart:    api.NewCartHandler(cartService, recipeService, authService),
		Order:   api.NewOrderHandler(orderService, cartService, profileService, authService, rateLimiter),
		Reward:  api.NewRewardHandler(rewardService, orderService, imageService, authService, rateLimiter),
		Profile: api.NewProfileHandler(profileService, authService),
	}, cfg.AllowedOrigins)

	srv := server.New(engine, cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
