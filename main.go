package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cadastro/internal/handlers"
	"cadastro/internal/models"
	"cadastro/internal/repositories"
	"cadastro/internal/services"
	"cadastro/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":4000")
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:3000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	frontendOrigin := viper.GetString("FRONTEND_ORIGIN")
	databaseURL := viper.GetString("DATABASE_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize Database ---
	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the repository relies on.
	db, err := openDatabase(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Event publishing is a seam for future consumers; the API works
	// without a broker when RABBITMQ_URL is unset.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, user event publishing disabled")
	}

	// --- Initialize Repository, Service and Handler ---
	userRepo := repositories.NewGORMUserRepository(db)
	userService := services.NewUserService(userRepo, mqClient)
	userHandler := handlers.NewUserHandler(userService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: frontendOrigin,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))

	// --- API Routes ---
	userHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Listens for user lifecycle events; today it only logs them. This is
	// where a notification worker would plug in.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for user events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received user event (tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeUserEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase connects to PostgreSQL when a DSN is configured and falls
// back to a local SQLite file otherwise.
func openDatabase(databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}
	if databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), cfg)
	}
	return gorm.Open(sqlite.Open("cadastro.db"), cfg)
}
