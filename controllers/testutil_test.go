package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sfa-app/controllers"
	"sfa-app/controllers/idgen"
	"sfa-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	idgen.Init()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
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

	app := fiber.New()
	vanInventoryController := controllers.NewVanInventoryController(db)
	app.Post("/van-inventory", vanInventoryController.CreateOrUpdateVanInventory)
	app.Get("/van-inventory", vanInventoryController.GetAllVanInventories)
	app.Get("/van-inventory/:id", vanInventoryController.GetVanInventoryByID)
	app.Delete("/van-inventory/:id", vanInventoryController.DeleteVanInventory)

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := models.User{
		Username: "driver",
		Password: "secret",
		Name:     "Driver One",
		Email:    "driver@example.com",
		IsActive: "Y",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedProduct(t *testing.T, db *gorm.DB, code, trackingType string) *models.Product {
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

func seedLot(t *testing.T, db *gorm.DB, productID uint, batchNumber string, remaining int) *models.BatchLot {
	t.Helper()
	expiry := time.Now().AddDate(0, 6, 0)
	lot := models.BatchLot{
		BatchNumber:       batchNumber,
		LotNumber:         "L-" + batchNumber,
		Quantity:          remaining,
		RemainingQuantity: remaining,
		ExpiryDate:        &expiry,
		IsActive:          "Y",
	}
	require.NoError(t, db.Create(&lot).Error)

	join := models.ProductBatch{
		ProductID:  productID,
		BatchLotID: lot.ID,
		Quantity:   remaining,
		IsActive:   "Y",
	}
	require.NoError(t, db.Create(&join).Error)
	return &lot
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}
