package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sfa-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVanInventoryNoneTracking(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "SKU-NONE", models.TrackingNone)

	resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id": user.ID,
		"van_inventory_items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 10, "unit_price": "2.50"},
		},
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.True(t, strings.HasPrefix(data["document_no"].(string), "VI"))
	assert.Equal(t, "L", data["loading_type"])
	assert.Equal(t, "van", data["location_type"])
	assert.Equal(t, "A", data["status"])
	assert.EqualValues(t, 1, data["location_id"])
	require.Len(t, data["items"].([]interface{}), 1)

	var stock models.InventoryStock
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&stock).Error)
	assert.Equal(t, 10, stock.CurrentStock)
	assert.Equal(t, 1, stock.LocationID)

	var movements int64
	require.NoError(t, db.Model(&models.StockMovement{}).
		Where("product_id = ?", product.ID).Count(&movements).Error)
	assert.EqualValues(t, 1, movements)
}

func TestCreateVanInventoryBatchLoad(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "SKU-BATCH", models.TrackingBatch)

	resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id": user.ID,
		"van_inventory_items": []map[string]interface{}{
			{
				"product_id": product.ID,
				"quantity":   25,
				"product_batches": []map[string]interface{}{
					{"batch_number": "BATCH-X", "lot_number": "LOT-X"},
				},
			},
		},
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "BATCH-X", items[0].(map[string]interface{})["batch_number"])

	var lot models.BatchLot
	require.NoError(t, db.Where("batch_number = ?", "BATCH-X").First(&lot).Error)
	assert.Equal(t, 25, lot.RemainingQuantity)

	var pb models.ProductBatch
	require.NoError(t, db.Where("product_id = ? AND batch_lot_id = ?", product.ID, lot.ID).First(&pb).Error)
	assert.Equal(t, 25, pb.Quantity)

	// batch lines record the movement twice
	var movements int64
	require.NoError(t, db.Model(&models.StockMovement{}).
		Where("product_id = ?", product.ID).Count(&movements).Error)
	assert.EqualValues(t, 2, movements)
}

func TestCreateVanInventoryBatchUnload(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "SKU-BATCH", models.TrackingBatch)
	lot := seedLot(t, db, product.ID, "BATCH-1", 50)

	// stock placed there by an earlier load
	lotID := lot.ID
	require.NoError(t, db.Create(&models.InventoryStock{
		ProductID:      product.ID,
		LocationID:     1,
		BatchID:        &lotID,
		CurrentStock:   50,
		AvailableStock: 50,
	}).Error)

	resp, _ := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id":      user.ID,
		"loading_type": "U",
		"van_inventory_items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 10, "batch_lot_id": lot.ID},
		},
	})

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got models.BatchLot
	require.NoError(t, db.First(&got, lot.ID).Error)
	assert.Equal(t, 40, got.RemainingQuantity)

	var stock models.InventoryStock
	require.NoError(t, db.Where("product_id = ? AND batch_id = ?", product.ID, lot.ID).First(&stock).Error)
	assert.Equal(t, 40, stock.CurrentStock)
}

func TestUnloadMoreThanAvailableRollsBack(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "SKU-BATCH", models.TrackingBatch)
	lot := seedLot(t, db, product.ID, "BATCH-1", 10)

	resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id":      user.ID,
		"loading_type": "U",
		"van_inventory_items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 100, "batch_lot_id": lot.ID},
		},
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"].(string), "Insufficient quantity in batch")

	// nothing from the failed document may survive
	var docs int64
	require.NoError(t, db.Model(&models.VanInventory{}).Count(&docs).Error)
	assert.EqualValues(t, 0, docs)

	var movements int64
	require.NoError(t, db.Model(&models.StockMovement{}).Count(&movements).Error)
	assert.EqualValues(t, 0, movements)

	var got models.BatchLot
	require.NoError(t, db.First(&got, lot.ID).Error)
	assert.Equal(t, 10, got.RemainingQuantity)
}

func TestValidationErrors(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		app, db := setupTestApp(t)
		product := seedProduct(t, db, "SKU-NONE", models.TrackingNone)

		resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
			"van_inventory_items": []map[string]interface{}{
				{"product_id": product.ID, "quantity": 1},
			},
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["message"].(string), "User ID is required")
	})

	t.Run("unknown user", func(t *testing.T) {
		app, _ := setupTestApp(t)

		resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
			"user_id": 9999,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["message"].(string), "User not found")
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		app, db := setupTestApp(t)
		user := seedUser(t, db)

		resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
			"user_id":    user.ID,
			"vehicle_id": 9999,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["message"].(string), "Vehicle not found")
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		app, db := setupTestApp(t)
		user := seedUser(t, db)
		product := seedProduct(t, db, "SKU-NONE", models.TrackingNone)

		resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
			"user_id": user.ID,
			"van_inventory_items": []map[string]interface{}{
				{"product_id": product.ID, "quantity": 0},
			},
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["message"].(string), "Quantity must be a positive number")
	})

	t.Run("unload without batch lot", func(t *testing.T) {
		app, db := setupTestApp(t)
		user := seedUser(t, db)
		product := seedProduct(t, db, "SKU-BATCH", models.TrackingBatch)

		resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
			"user_id":      user.ID,
			"loading_type": "U",
			"van_inventory_items": []map[string]interface{}{
				{"product_id": product.ID, "quantity": 1},
			},
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["message"].(string), "Batch lot ID is required for unload items")
	})

	t.Run("serial count mismatch", func(t *testing.T) {
		app, db := setupTestApp(t)
		user := seedUser(t, db)
		product := seedProduct(t, db, "SKU-SERIAL", models.TrackingSerial)

		resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
			"user_id": user.ID,
			"van_inventory_items": []map[string]interface{}{
				{"product_id": product.ID, "quantity": 3, "product_serials": []string{"SN-1"}},
			},
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body["message"].(string), "Number of serial numbers must be equal to quantity")
	})
}

func TestSerialLoadAndUnload(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "SKU-SERIAL", models.TrackingSerial)

	resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id": user.ID,
		"van_inventory_items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 2, "product_serials": []string{"SN-1", "SN-2"}},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	serialNos := items[0].(map[string]interface{})["serial_numbers"].([]interface{})
	assert.Len(t, serialNos, 2)

	var serials []models.SerialNumber
	require.NoError(t, db.Where("product_id = ?", product.ID).Find(&serials).Error)
	require.Len(t, serials, 2)
	for _, s := range serials {
		assert.Equal(t, models.SerialStatusInVan, s.Status)
	}

	// one movement per serial unit
	var movements int64
	require.NoError(t, db.Model(&models.StockMovement{}).
		Where("product_id = ?", product.ID).Count(&movements).Error)
	assert.EqualValues(t, 2, movements)

	// unload them back
	resp, _ = postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id":      user.ID,
		"loading_type": "U",
		"van_inventory_items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 2, "product_serials": []string{"SN-1", "SN-2"}},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, db.Where("product_id = ?", product.ID).Find(&serials).Error)
	for _, s := range serials {
		assert.Equal(t, models.SerialStatusAvailable, s.Status)
	}
}

func TestDuplicateSerialLoadFails(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "SKU-SERIAL", models.TrackingSerial)

	resp, _ := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id": user.ID,
		"van_inventory_items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 1, "product_serials": []string{"SN-DUP"}},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id": user.ID,
		"van_inventory_items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 1, "product_serials": []string{"SN-DUP"}},
		},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["message"].(string), "already exists")
}

func TestUpdateReplacesLineSet(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedUser(t, db)
	productA := seedProduct(t, db, "SKU-A", models.TrackingNone)
	productB := seedProduct(t, db, "SKU-B", models.TrackingNone)
	productC := seedProduct(t, db, "SKU-C", models.TrackingNone)
	productD := seedProduct(t, db, "SKU-D", models.TrackingNone)

	resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id": user.ID,
		"van_inventory_items": []map[string]interface{}{
			{"product_id": productA.ID, "quantity": 1},
			{"product_id": productB.ID, "quantity": 2},
			{"product_id": productC.ID, "quantity": 3},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	docID := data["id"].(string)
	items := data["items"].([]interface{})
	require.Len(t, items, 3)

	var keptItemID float64
	for _, it := range items {
		entry := it.(map[string]interface{})
		if entry["product_id"].(float64) == float64(productB.ID) {
			keptItemID = entry["id"].(float64)
		}
	}
	require.NotZero(t, keptItemID)

	// Resubmit with one surviving line and one new line
	resp, body = postJSON(t, app, "/van-inventory", map[string]interface{}{
		"id":      docID,
		"user_id": user.ID,
		"van_inventory_items": []map[string]interface{}{
			{"id": keptItemID, "product_id": productB.ID, "quantity": 5},
			{"product_id": productD.ID, "quantity": 7},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["message"].(string), "updated")

	var count int64
	require.NoError(t, db.Model(&models.VanInventoryItem{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var kept models.VanInventoryItem
	require.NoError(t, db.First(&kept, uint(keptItemID)).Error)
	assert.Equal(t, 5, kept.Quantity)
	assert.Equal(t, productB.ID, kept.ProductID)

	var doc models.VanInventory
	require.NoError(t, db.First(&doc).Error)
	assert.Equal(t, 2, doc.LogInst)
}

func TestDeleteVanInventoryCompensatesBatches(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "SKU-BATCH", models.TrackingBatch)

	resp, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id": user.ID,
		"van_inventory_items": []map[string]interface{}{
			{
				"product_id":      product.ID,
				"quantity":        20,
				"product_batches": []map[string]interface{}{{"batch_number": "BATCH-DEL"}},
			},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	docID := body["data"].(map[string]interface{})["id"].(string)

	var lot models.BatchLot
	require.NoError(t, db.Where("batch_number = ?", "BATCH-DEL").First(&lot).Error)
	require.Equal(t, 20, lot.RemainingQuantity)

	req := httptest.NewRequest(http.MethodDelete, "/van-inventory/"+docID, nil)
	delResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, delResp.StatusCode)

	require.NoError(t, db.Where("batch_number = ?", "BATCH-DEL").First(&lot).Error)
	assert.Equal(t, 0, lot.RemainingQuantity)

	var docs int64
	require.NoError(t, db.Model(&models.VanInventory{}).Count(&docs).Error)
	assert.EqualValues(t, 0, docs)
}

func TestGetVanInventoryByID(t *testing.T) {
	app, db := setupTestApp(t)
	user := seedUser(t, db)
	product := seedProduct(t, db, "SKU-NONE", models.TrackingNone)

	_, body := postJSON(t, app, "/van-inventory", map[string]interface{}{
		"user_id": user.ID,
		"van_inventory_items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 4},
		},
	})
	docID := body["data"].(map[string]interface{})["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/van-inventory/"+docID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
