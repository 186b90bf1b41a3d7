package main

import (
	"fmt"
	"log"

	"pos_backend/internal/config"
	"pos_backend/internal/database"
	"pos_backend/internal/migrations"
	"pos_backend/internal/models"

	"github.com/google/uuid"
)

// Drops and recreates the schema, then seeds the default admin and a few
// sample catalog entries. Intended for local development only.
func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.TransactionItem{},
		&models.Transaction{},
		&models.Product{},
		&models.User{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Seeding sample products...")
	products := []models.Product{
		{ID: uuid.NewString(), Name: "Espresso", Image: "/images/espresso.jpg", Category: "coffee", Description: "Double shot of house blend", Price: 2.5},
		{ID: uuid.NewString(), Name: "Cappuccino", Image: "/images/cappuccino.jpg", Category: "coffee", Description: "Espresso with steamed milk foam", Price: 3.5},
		{ID: uuid.NewString(), Name: "Croissant", Image: "/images/croissant.jpg", Category: "pastry", Description: "Butter croissant, baked daily", Price: 2.0},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Fatal("Failed to seed products:", err)
	}

	fmt.Println("Database initialized successfully")
}
