package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/sandwichshop/gin-sandwich-api/docs" // Import generated docs
	"github.com/sandwichshop/gin-sandwich-api/internal/config"
	"github.com/sandwichshop/gin-sandwich-api/internal/controllers"
	"github.com/sandwichshop/gin-sandwich-api/internal/database"
	"github.com/sandwichshop/gin-sandwich-api/internal/middleware"
	"github.com/sandwichshop/gin-sandwich-api/internal/models"
	"github.com/sandwichshop/gin-sandwich-api/internal/services"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                 *gorm.DB
	configuration      *config.Config
	userController     controllers.UserController
	orderController    controllers.OrderController
	reviewController   controllers.ReviewController
	promoController    controllers.PromoController
	sandwichController controllers.SandwichController
	paymentController  controllers.PaymentController
)

// @title Sandwich Shop API
// @version 1.0
// @description Backend for the sandwich ordering service
// @host localhost:8000
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	userController = controllers.NewUserController(services.NewUserService(db))
	orderController = controllers.NewOrderController(services.NewOrderService(db))
	reviewController = controllers.NewReviewController(services.NewReviewService(db))
	promoController = controllers.NewPromoController(services.NewPromoService(db))
	sandwichController = controllers.NewSandwichController(services.NewSandwichService(db))
	paymentController = controllers.NewPaymentController(services.NewPaymentService(db))

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, syncs the schema and
// returns a gorm.DB instance. A failed schema sync is logged but not fatal;
// a connection that cannot be established at all still is.
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  "disable",
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Idempotent schema sync, one table per entity
	if err := db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Sandwich{},
		&models.Recipe{},
		&models.Resource{},
		&models.Payment{},
		&models.Review{},
		&models.Promo{},
	); err != nil {
		log.WithError(err).Warn("Schema sync failed, continuing with existing tables")
	}

	// Seed the menu only if it is empty
	var count int64
	db.Model(&models.Sandwich{}).Count(&count)
	if count == 0 {
		log.Info("Menu is empty, seeding initial sandwiches")
		seedDatabase()
	} else {
		log.Info("Menu already seeded")
	}
	return db
}

// seedDatabase seeds the menu with initial sandwiches
func seedDatabase() {
	sandwiches := []models.Sandwich{
		{SandwichName: "Classic BLT", Price: 7.49},
		{SandwichName: "Turkey Club", Price: 8.99},
		{SandwichName: "Veggie Delight", Price: 6.99},
	}
	for _, sandwich := range sandwiches {
		db.Create(&sandwich)
	}
	log.Info("Menu seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	router.GET("/", rootHandler)
	router.GET("/health", healthCheckHandler)

	users := router.Group("/users")
	{
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)
		users.POST("", userController.CreateUser)
		users.POST("/login", userController.Login)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	orders := router.Group("/orders")
	{
		orders.GET("", orderController.GetAllOrders)
		orders.GET("/:id", orderController.GetOrderByID)
		orders.GET("/user/:id", orderController.GetOrdersByUser)
		orders.POST("", orderController.CreateOrder)
		orders.PUT("/:id", orderController.UpdateOrder)
	}

	reviews := router.Group("/reviews")
	{
		reviews.GET("", reviewController.GetAllReviews)
		reviews.GET("/:id", reviewController.GetReviewByID)
		reviews.GET("/user/:id", reviewController.GetReviewsByUser)
		reviews.POST("", reviewController.CreateReview)
		reviews.PUT("/:id", reviewController.UpdateReview)
		reviews.DELETE("/:id", reviewController.DeleteReview)
	}

	promos := router.Group("/promos")
	{
		promos.GET("", promoController.GetAllPromos)
		promos.GET("/active", promoController.GetActivePromos)
		promos.POST("", promoController.CreatePromo)
		promos.PUT("/:id", promoController.UpdatePromo)
		promos.DELETE("/:id", promoController.DeletePromo)
	}

	sandwiches := router.Group("/sandwiches")
	{
		sandwiches.GET("", sandwichController.GetAllSandwiches)
		sandwiches.GET("/:id", sandwichController.GetSandwichByID)
	}

	payments := router.Group("/payments")
	{
		payments.POST("", paymentController.CreatePayment)
		payments.GET("/order/:order_id", paymentController.GetPaymentByOrder)
		payments.PUT("/:id", paymentController.UpdatePayment)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// rootHandler confirms the service is up
// @Summary API root
// @Description Confirm the API is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Sandwich Shop API is running!"})
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-sandwich-api",
	})
}
