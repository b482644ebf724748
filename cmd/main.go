package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sportsbook/internal/config"
	"sportsbook/internal/database"
	"sportsbook/internal/handlers"
	"sportsbook/internal/middleware"
	"sportsbook/internal/repository"
	"sportsbook/internal/validation"
)

func main() {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := database.Connect(cfg.GetDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Register the slug rule and json field names on gin's binding engine
	validation.Register()

	// Initialize repositories; each child store holds its parent so
	// deactivations can cascade upward
	sportRepo := repository.NewSportRepository(database.GetDB())
	eventRepo := repository.NewEventRepository(database.GetDB(), sportRepo)
	selectionRepo := repository.NewSelectionRepository(database.GetDB(), eventRepo)

	// Initialize handlers
	sportHandler := handlers.NewSportHandler(sportRepo)
	eventHandler := handlers.NewEventHandler(eventRepo)
	selectionHandler := handlers.NewSelectionHandler(selectionRepo)

	// Set up Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))

	// CORS middleware
	allowedOrigins := []string{
		"http://localhost:3000", // Local development
		"http://localhost:5173", // Vite dev server
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	if cfg.Server.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.Server.FrontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	handlers.RegisterRoutes(router, sportHandler, eventHandler, selectionHandler)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
