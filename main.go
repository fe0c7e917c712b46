package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"pizzeria/internal/database"
	"pizzeria/internal/handlers"
	"pizzeria/internal/repositories"
	"pizzeria/internal/services"
	"pizzeria/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("JWT_SECRET", "dev_jwt_secret")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	// DATABASE_URL has no default: the connector fails with a descriptive
	// error on the first connection attempt when it is absent.
	connector := database.NewConnector(viper.GetString("DATABASE_URL"))
	db, err := connector.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, shop events disabled")
	}

	app := NewApp(db, mqClient, viper.GetString("JWT_SECRET"))

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for shop events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received shop event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeShopEvents(messageHandler); consumerErr != nil {
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

// NewApp wires repositories, services and handlers into a Fiber app. The
// database handle and the (possibly nil) RabbitMQ client are injected so
// tests can supply their own.
func NewApp(db *gorm.DB, mqClient *rabbitmq.Client, jwtSecret string) *fiber.App {
	pizzaRepo := repositories.NewGORMPizzaRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	pizzaService := services.NewPizzaService(pizzaRepo, mqClient)
	userService := services.NewUserService(userRepo, mqClient)
	authService := services.NewAuthService(userRepo, jwtSecret)

	pizzaHandler := handlers.NewPizzaHandler(pizzaService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")
	pizzaHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
