// database/migrate.go
package database

import (
	"sfa-app/models"
	"sfa-app/sfa/master/currency"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.Product{},
		&models.Uom{},
		&models.BatchLot{},
		&models.ProductBatch{},
		&models.SerialNumber{},
		&models.InventoryStock{},
		&models.StockMovement{},
		&models.VanInventory{},
		&models.VanInventoryItem{},
		&models.Vehicle{},
		&models.Depot{},
		&models.Customer{},
		&currency.Currency{},
	)
}
