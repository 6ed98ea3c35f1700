package repositories_test

import (
	"encoding/json"
	"testing"

	"sfa-app/models"
	"sfa-app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialInputUnmarshalJSON(t *testing.T) {
	t.Run("bare string form", func(t *testing.T) {
		var input repositories.SerialInput
		require.NoError(t, json.Unmarshal([]byte(`"SN-001"`), &input))
		assert.Equal(t, "SN-001", input.SerialNo)
		assert.Nil(t, input.CustomerID)
	})

	t.Run("object form", func(t *testing.T) {
		var input repositories.SerialInput
		require.NoError(t, json.Unmarshal([]byte(`{"serial_number":"SN-002","customer_id":7}`), &input))
		assert.Equal(t, "SN-002", input.SerialNo)
		require.NotNil(t, input.CustomerID)
		assert.Equal(t, uint(7), *input.CustomerID)
	})

	t.Run("mixed list", func(t *testing.T) {
		var inputs []repositories.SerialInput
		require.NoError(t, json.Unmarshal([]byte(`["SN-1",{"serial_number":"SN-2"}]`), &inputs))
		require.Len(t, inputs, 2)
		assert.Equal(t, "SN-1", inputs[0].SerialNo)
		assert.Equal(t, "SN-2", inputs[1].SerialNo)
	})

	t.Run("invalid payload", func(t *testing.T) {
		var input repositories.SerialInput
		assert.Error(t, json.Unmarshal([]byte(`42`), &input))
	})
}

func TestCreateOrUpdateSerialNumber(t *testing.T) {
	t.Run("load creates a serial in the van", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewSerialRepository(db)
		product := createProduct(t, db, "SKU-S", models.TrackingSerial)

		serial, err := repo.CreateOrUpdateSerialNumber(product.ID,
			repositories.SerialInput{SerialNo: "SN-001"}, nil, 1, repositories.LoadingTypeLoad, 1)
		require.NoError(t, err)
		assert.Equal(t, models.SerialStatusInVan, serial.Status)
		require.NotNil(t, serial.LocationID)
		assert.Equal(t, 1, *serial.LocationID)
	})

	t.Run("duplicate load is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewSerialRepository(db)
		product := createProduct(t, db, "SKU-S", models.TrackingSerial)

		_, err := repo.CreateOrUpdateSerialNumber(product.ID,
			repositories.SerialInput{SerialNo: "SN-001"}, nil, 1, repositories.LoadingTypeLoad, 1)
		require.NoError(t, err)

		_, err = repo.CreateOrUpdateSerialNumber(product.ID,
			repositories.SerialInput{SerialNo: "SN-001"}, nil, 1, repositories.LoadingTypeLoad, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("unload moves the serial to available", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewSerialRepository(db)
		product := createProduct(t, db, "SKU-S", models.TrackingSerial)

		_, err := repo.CreateOrUpdateSerialNumber(product.ID,
			repositories.SerialInput{SerialNo: "SN-001"}, nil, 1, repositories.LoadingTypeLoad, 1)
		require.NoError(t, err)

		serial, err := repo.CreateOrUpdateSerialNumber(product.ID,
			repositories.SerialInput{SerialNo: "SN-001"}, nil, 2, repositories.LoadingTypeUnload, 1)
		require.NoError(t, err)
		assert.Equal(t, models.SerialStatusAvailable, serial.Status)
		require.NotNil(t, serial.LocationID)
		assert.Equal(t, 2, *serial.LocationID)
	})

	t.Run("unload of unknown serial is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewSerialRepository(db)
		product := createProduct(t, db, "SKU-S", models.TrackingSerial)

		_, err := repo.CreateOrUpdateSerialNumber(product.ID,
			repositories.SerialInput{SerialNo: "SN-MISSING"}, nil, 1, repositories.LoadingTypeUnload, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("unload requires in_van status", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewSerialRepository(db)
		product := createProduct(t, db, "SKU-S", models.TrackingSerial)

		sold := models.SerialNumber{
			SerialNo:  "SN-SOLD",
			ProductID: product.ID,
			Status:    models.SerialStatusSold,
		}
		require.NoError(t, db.Create(&sold).Error)

		_, err := repo.CreateOrUpdateSerialNumber(product.ID,
			repositories.SerialInput{SerialNo: "SN-SOLD"}, nil, 1, repositories.LoadingTypeUnload, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid serial status")
	})

	t.Run("empty serial number", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewSerialRepository(db)

		_, err := repo.CreateOrUpdateSerialNumber(1,
			repositories.SerialInput{}, nil, 1, repositories.LoadingTypeLoad, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Serial number is required")
	})
}
