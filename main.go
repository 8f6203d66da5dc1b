package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"app/config"
	"app/database"
	"app/dataset"
	"app/handlers"
	"app/routes"
	"app/ticker"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	config.Load()

	// Load the three base tables once; they are read-only afterwards.
	var store *dataset.Store
	if config.AppConfig.DatabaseURL != "" {
		database.Connect(config.AppConfig.DatabaseURL)
		defer database.Close()
		store, err = database.LoadStore(context.Background())
		if err != nil {
			log.Fatalf("Failed to load datasets from database: %v", err)
		}
	} else {
		store, err = dataset.LoadDir(config.AppConfig.DataDir)
		if err != nil {
			log.Fatalf("Failed to load datasets from %s: %v", config.AppConfig.DataDir, err)
		}
	}
	log.Printf("Loaded %d sales rows, %d products, %d inventory rows",
		len(store.Sales()), len(store.Products()), len(store.Inventory()))

	// Start the auto-refresh tick source.
	ticks := ticker.New(config.AppConfig.RefreshInterval)
	defer ticks.Stop()

	handlers.Setup(store, ticks)

	app := fiber.New()

	// Add CORS and request logging middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(config.AppConfig.ListenAddr))
}
