// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "beautybook/swagger" // Import generated swagger docs

	"beautybook/internal/handler"
	"beautybook/internal/middleware"
	"beautybook/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	PackageHandler *handler.PackageHandler
	BookingHandler *handler.BookingHandler
	UserHandler    *handler.UserHandler
	JWTManager     *auth.JWTManager
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Package catalog (public reads)
		packages := v1.Group("/packages")
		{
			packages.GET("", cfg.PackageHandler.ListPackages)
			packages.GET("/:id", cfg.PackageHandler.GetPackage)
		}

		// Package catalog writes (protected)
		packagesProtected := v1.Group("/packages")
		packagesProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			packagesProtected.POST("", cfg.PackageHandler.CreatePackage)
			packagesProtected.PUT("/:id", cfg.PackageHandler.UpdatePackage)
			packagesProtected.DELETE("/:id", cfg.PackageHandler.DeletePackage)
			packagesProtected.POST("/:id/images", cfg.PackageHandler.NewImageUpload)
		}

		// Bookings (protected)
		bookings := v1.Group("/bookings")
		bookings.Use(middleware.Auth(cfg.JWTManager))
		{
			bookings.GET("", cfg.BookingHandler.ListBookings)
			bookings.POST("/:id", cfg.BookingHandler.CreateBooking)
			bookings.GET("/:id", cfg.BookingHandler.GetBooking)
			bookings.DELETE("/:id", cfg.BookingHandler.DeleteBooking)
		}

		// Users (protected)
		users := v1.Group("/users")
		users.Use(middleware.Auth(cfg.JWTManager))
		{
			users.GET("/me", cfg.UserHandler.GetMe)
		}
	}

	return r
}
