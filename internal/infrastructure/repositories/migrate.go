package repositories

import (
	"gorm.io/gorm"

	"campus-canteen.backend/internal/infrastructure/models"
)

// AutoMigrate creates or updates the schema for every persisted model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Meal{},
		&models.TimeSlot{},
		&models.Order{},
		&models.OrderItem{},
		&models.WellnessTracking{},
	)
}
