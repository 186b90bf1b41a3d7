package migrations

import (
	"log"

	"pos_backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds the default admin account.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Transaction{},
		&models.TransactionItem{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultAdmin(db); err != nil {
		return err
	}

	log.Println("Migrations completed successfully")
	return nil
}

func seedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:       uuid.NewString(),
		Name:     "Administrator",
		Email:    "admin@pos.local",
		Password: string(hashed),
		Role:     string(models.RoleAdmin),
	}

	log.Println("Seeding default admin user...")
	return db.Create(admin).Error
}
