package repositories_test

import (
	"testing"

	"sfa-app/models"
	"sfa-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateInventoryStock(t *testing.T) {
	t.Run("load creates the stock row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewStockRepository(db)
		product := createProduct(t, db, "SKU-1", models.TrackingNone)

		require.NoError(t, repo.UpdateInventoryStock(product.ID, 3, 10, repositories.LoadingTypeLoad, nil, nil, 1))

		var stock models.InventoryStock
		require.NoError(t, db.Where("product_id = ? AND location_id = ?", product.ID, 3).First(&stock).Error)
		assert.Equal(t, 10, stock.CurrentStock)
		assert.Equal(t, 10, stock.AvailableStock)
	})

	t.Run("zero location falls back to the default depot", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewStockRepository(db)
		product := createProduct(t, db, "SKU-1", models.TrackingNone)

		require.NoError(t, repo.UpdateInventoryStock(product.ID, 0, 10, repositories.LoadingTypeLoad, nil, nil, 1))

		var stock models.InventoryStock
		require.NoError(t, db.Where("product_id = ? AND location_id = ?", product.ID, 1).First(&stock).Error)
		assert.Equal(t, 10, stock.CurrentStock)
	})

	t.Run("load increments an existing row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewStockRepository(db)
		product := createProduct(t, db, "SKU-1", models.TrackingNone)

		require.NoError(t, repo.UpdateInventoryStock(product.ID, 1, 10, repositories.LoadingTypeLoad, nil, nil, 1))
		require.NoError(t, repo.UpdateInventoryStock(product.ID, 1, 5, repositories.LoadingTypeLoad, nil, nil, 1))

		var stock models.InventoryStock
		require.NoError(t, db.Where("product_id = ? AND location_id = ?", product.ID, 1).First(&stock).Error)
		assert.Equal(t, 15, stock.CurrentStock)
	})

	t.Run("unload decrements and rejects going negative", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewStockRepository(db)
		product := createProduct(t, db, "SKU-1", models.TrackingNone)

		require.NoError(t, repo.UpdateInventoryStock(product.ID, 1, 10, repositories.LoadingTypeLoad, nil, nil, 1))
		require.NoError(t, repo.UpdateInventoryStock(product.ID, 1, 4, repositories.LoadingTypeUnload, nil, nil, 1))

		err := repo.UpdateInventoryStock(product.ID, 1, 7, repositories.LoadingTypeUnload, nil, nil, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient stock")

		var stock models.InventoryStock
		require.NoError(t, db.Where("product_id = ? AND location_id = ?", product.ID, 1).First(&stock).Error)
		assert.Equal(t, 6, stock.CurrentStock)
	})

	t.Run("unload with no stock row is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewStockRepository(db)
		product := createProduct(t, db, "SKU-1", models.TrackingNone)

		err := repo.UpdateInventoryStock(product.ID, 1, 1, repositories.LoadingTypeUnload, nil, nil, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient stock")
	})

	t.Run("batch dimension keys separate rows", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewStockRepository(db)
		product := createProduct(t, db, "SKU-1", models.TrackingBatch)

		batchA := uint(11)
		batchB := uint(12)
		require.NoError(t, repo.UpdateInventoryStock(product.ID, 1, 10, repositories.LoadingTypeLoad, &batchA, nil, 1))
		require.NoError(t, repo.UpdateInventoryStock(product.ID, 1, 20, repositories.LoadingTypeLoad, &batchB, nil, 1))

		var count int64
		require.NoError(t, db.Model(&models.InventoryStock{}).
			Where("product_id = ?", product.ID).Count(&count).Error)
		assert.EqualValues(t, 2, count)
	})
}

func TestStockMovements(t *testing.T) {
	t.Run("movement date defaults to now", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewStockRepository(db)
		product := createProduct(t, db, "SKU-1", models.TrackingNone)

		m := models.StockMovement{
			ProductID:     product.ID,
			MovementType:  "load",
			ReferenceType: repositories.ReferenceTypeVanInventory,
			ReferenceID:   1,
			Quantity:      5,
		}
		require.NoError(t, repo.CreateStockMovement(&m))
		assert.False(t, m.MovementDate.IsZero())
	})

	t.Run("movements filter by product and type", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewStockRepository(db)
		productA := createProduct(t, db, "SKU-A", models.TrackingNone)
		productB := createProduct(t, db, "SKU-B", models.TrackingNone)

		require.NoError(t, repo.CreateStockMovement(&models.StockMovement{
			ProductID: productA.ID, MovementType: "load", ReferenceType: repositories.ReferenceTypeVanInventory, ReferenceID: 1, Quantity: 5,
		}))
		require.NoError(t, repo.CreateStockMovement(&models.StockMovement{
			ProductID: productA.ID, MovementType: "unload", ReferenceType: repositories.ReferenceTypeVanInventory, ReferenceID: 2, Quantity: 3,
		}))
		require.NoError(t, repo.CreateStockMovement(&models.StockMovement{
			ProductID: productB.ID, MovementType: "load", ReferenceType: repositories.ReferenceTypeVanInventory, ReferenceID: 3, Quantity: 2,
		}))

		all, err := repo.GetMovements(0, "", 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		loads, err := repo.GetMovements(productA.ID, "load", 0)
		require.NoError(t, err)
		require.Len(t, loads, 1)
		assert.Equal(t, productA.ID, loads[0].ProductID)

		limited, err := repo.GetMovements(0, "", 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("stock on hand aggregates per product and location", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewStockRepository(db)
		product := createProduct(t, db, "SKU-1", models.TrackingBatch)

		batchA := uint(21)
		batchB := uint(22)
		require.NoError(t, repo.UpdateInventoryStock(product.ID, 1, 10, repositories.LoadingTypeLoad, &batchA, nil, 1))
		require.NoError(t, repo.UpdateInventoryStock(product.ID, 1, 5, repositories.LoadingTypeLoad, &batchB, nil, 1))

		rows, err := repo.GetStockOnHand()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "SKU-1", rows[0].ItemCode)
		assert.Equal(t, 15, rows[0].CurrentStock)
	})
}
