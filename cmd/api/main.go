package main

import (
	"fmt"
	"net/http"
	"os"

	"costmanager/internal/config"
	"costmanager/internal/database"
	"costmanager/internal/handlers"
	"costmanager/internal/logger"
	"costmanager/internal/middleware"
	"costmanager/internal/services"
	"costmanager/internal/stores"
	"costmanager/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "costmanager/internal/docs" // Import swagger docs
)

// Default user created at startup so a fresh database is usable immediately.
const (
	seedUserID        = 123123
	seedUserFirstName = "mosh"
	seedUserLastName  = "israeli"
	seedMaritalStatus = "single"
)

// @title           Cost Manager API
// @version         1.0
// @description     Tracks per-user monetary costs and produces monthly category-grouped reports.

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize stores and services
	db := dbManager.DB()
	userStore := stores.NewUserStore(db)
	costStore := stores.NewCostStore(db)
	userService := services.NewUserService(userStore)
	ledgerService := services.NewLedgerService(db, userStore, costStore)
	reportService := services.NewReportService(costStore)

	// Seed the default user on an empty database
	if _, err := userService.EnsureUser(seedUserID, seedUserFirstName, seedUserLastName, nil, seedMaritalStatus); err != nil {
		return fmt.Errorf("failed to ensure seed user: %w", err)
	}

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	costHandler := handlers.NewCostHandler(ledgerService, reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API group
	api := router.Group("/api")
	api.POST("/add", costHandler.AddCost)
	api.GET("/report", costHandler.GetMonthlyReport)
	api.GET("/about", handlers.About)

	users := api.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("/:userId", userHandler.GetUserDetails)
	users.GET("/:userId/costs", costHandler.GetUserCosts)

	log.Infof("Starting cost manager server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
