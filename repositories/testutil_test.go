package repositories_test

import (
	"testing"
	"time"

	"sfa-app/controllers/idgen"
	"sfa-app/models"
	"sfa-app/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	idgen.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.BatchLot{},
		&models.ProductBatch{},
		&models.SerialNumber{},
		&models.InventoryStock{},
		&models.StockMovement{},
		&models.VanInventory{},
		&models.VanInventoryItem{},
		&models.Vehicle{},
	))

	return db
}

func createProduct(t *testing.T, db *gorm.DB, code string, trackingType string) *models.Product {
	t.Helper()
	product := models.Product{
		ItemCode:     code,
		ItemName:     "Product " + code,
		TrackingType: trackingType,
		Uom:          "PCS",
		IsActive:     "Y",
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func createLotWithJoin(t *testing.T, db *gorm.DB, productID uint, batchNumber string, remaining int, expiry *time.Time) *models.BatchLot {
	t.Helper()
	lot := models.BatchLot{
		BatchNumber:       batchNumber,
		LotNumber:         "L-" + batchNumber,
		Quantity:          remaining,
		RemainingQuantity: remaining,
		ExpiryDate:        expiry,
		IsActive:          "Y",
	}
	require.NoError(t, db.Create(&lot).Error)

	join := models.ProductBatch{
		ProductID:  productID,
		BatchLotID: lot.ID,
		Quantity:   0,
		IsActive:   "Y",
	}
	require.NoError(t, db.Create(&join).Error)
	return &lot
}

func futureDate(days int) *time.Time {
	d := time.Now().AddDate(0, 0, days)
	return &d
}

func loadBatch(t *testing.T, db *gorm.DB, repo *repositories.BatchRepository, productID, lotID uint, qty int) {
	t.Helper()
	require.NoError(t, repo.UpdateBatchLotQuantity(lotID, qty, repositories.LoadingTypeLoad))
	require.NoError(t, repo.UpdateProductBatchQuantity(productID, lotID, qty, repositories.LoadingTypeLoad))
}
