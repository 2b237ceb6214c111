package main

import (
	"log"

	"coursehub/backend/config"
	"coursehub/backend/models"
	"coursehub/backend/routes"
	"coursehub/backend/store"
	"coursehub/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	stores := store.NewGormStores(db)

	if err := seedDefaultAdmin(stores.Admins); err != nil {
		log.Fatalf("Error seeding admin: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(utils.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, stores, cfg)

	// Start server
	log.Fatal(app.Listen(cfg.Addr()))
}

// seedDefaultAdmin inserts a bootstrap admin account when the admins table
// is empty, so a fresh deployment can be signed into at all.
func seedDefaultAdmin(admins store.AdminStore) error {
	count, err := admins.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = admins.Insert(models.Admin{
		ID:        "001A",
		Name:      "Administrator",
		AdminName: "admin",
		Password:  "admin123",
		Contact:   "admin@coursehub.local",
		Status:    models.StatusActive,
	})
	if err == nil {
		log.Println("Seeded default admin account (admin/admin123)")
	}
	return err
}
