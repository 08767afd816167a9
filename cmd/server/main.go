package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beautybook/internal/cache"
	"beautybook/internal/config"
	"beautybook/internal/database"
	"beautybook/internal/handler"
	"beautybook/internal/repository"
	"beautybook/internal/router"
	"beautybook/internal/service"
	"beautybook/internal/storage"
	"beautybook/internal/validator"
	"beautybook/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           BeautyBook API
// @version         1.0
// @description     A REST API for browsing and booking beauty service packages, built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	packageRepo := repository.NewPackageRepository(mongoDB.Database)
	bookingRepo := repository.NewBookingRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)

	// Service layer
	packageService := service.NewPackageService(packageRepo, bookingRepo, redisCache, s3Client)
	bookingService := service.NewBookingService(bookingRepo, packageRepo, userRepo)
	userService := service.NewUserService(userRepo, bookingRepo, redisCache)

	// Handler layer
	packageHandler := handler.NewPackageHandler(packageService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	userHandler := handler.NewUserHandler(userService)

	// Router
	r := router.Setup(&router.Config{
		PackageHandler: packageHandler,
		BookingHandler: bookingHandler,
		UserHandler:    userHandler,
		JWTManager:     jwtManager,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
