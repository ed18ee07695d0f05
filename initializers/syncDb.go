package initializers

import (
	"log"

	"github.com/woodora/woodora-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentRequest{},
		&models.Message{},
	)
	log.Println("Database synced successfully.")
}
