package main

import (
	"log"
	"net/http"
	"time"

	"pos_backend/internal/auth"
	"pos_backend/internal/config"
	"pos_backend/internal/database"
	"pos_backend/internal/handlers"
	"pos_backend/internal/middleware"
	"pos_backend/internal/migrations"
	"pos_backend/internal/redis"
	"pos_backend/internal/repository"
	"pos_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis (token denylist for logout)
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Token manager
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokens, redisClient)
	productService := services.NewProductService(productRepo)
	transactionService := services.NewTransactionService(transactionRepo, productRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	// Setup routes
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, handlers.Envelope{
			Status:     http.StatusText(http.StatusInternalServerError),
			StatusCode: http.StatusInternalServerError,
			Msg:        "something went wrong",
		})
	}))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Envelope{
			Status:     http.StatusText(http.StatusNotFound),
			StatusCode: http.StatusNotFound,
			Msg:        "not found",
		})
	})

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	productRoutes := router.Group("/product")
	{
		productRoutes.GET("", productHandler.GetProducts)
		productRoutes.GET("/:id", productHandler.GetProduct)

		protected := productRoutes.Group("", middleware.Authenticate(tokens, redisClient))
		{
			protected.POST("", productHandler.CreateProduct)
			protected.DELETE("/:id", productHandler.DeleteProduct)
		}
	}

	transactionRoutes := router.Group("/transaction")
	{
		transactionRoutes.POST("", transactionHandler.CreateTransaction)
		transactionRoutes.GET("", transactionHandler.GetTransactions)
		transactionRoutes.GET("/:id", transactionHandler.GetTransaction)
		transactionRoutes.POST("/:id", transactionHandler.UpdateTransactionStatus)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
