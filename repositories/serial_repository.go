package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sfa-app/models"

	"gorm.io/gorm"
)

// SerialInput accepts either a bare serial string or a detail object,
// the two payload forms the mobile clients send.
type SerialInput struct {
	SerialNo       string     `json:"serial_number"`
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
	CustomerID     *uint      `json:"customer_id"`
}

func (s *SerialInput) UnmarshalJSON(data []byte) error {
	// Try the bare string form first
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.SerialNo = str
		return nil
	}

	type alias SerialInput
	var full alias
	if err := json.Unmarshal(data, &full); err != nil {
		return fmt.Errorf("invalid serial number payload: %w", err)
	}
	*s = SerialInput(full)
	return nil
}

type SerialRepository struct {
	db *gorm.DB
}

func NewSerialRepository(db *gorm.DB) *SerialRepository {
	return &SerialRepository{db: db}
}

// CreateOrUpdateSerialNumber runs one serial unit through the load/unload
// state machine. Loading creates the serial in in_van; unloading requires
// it to be exactly in_van and moves it to available.
func (r *SerialRepository) CreateOrUpdateSerialNumber(productID uint, input SerialInput, batchID *uint, locationID int, loadingType string, userID int) (*models.SerialNumber, error) {
	if input.SerialNo == "" {
		return nil, errors.New("Serial number is required")
	}

	var existing models.SerialNumber
	err := r.db.Where("serial_no = ?", input.SerialNo).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	switch loadingType {
	case LoadingTypeLoad:
		if found {
			return nil, fmt.Errorf("Serial number %s already exists", input.SerialNo)
		}
		serial := models.SerialNumber{
			SerialNo:       input.SerialNo,
			ProductID:      productID,
			Status:         models.SerialStatusInVan,
			BatchID:        batchID,
			LocationID:     &locationID,
			CustomerID:     input.CustomerID,
			WarrantyExpiry: input.WarrantyExpiry,
			CreatedBy:      userID,
			UpdatedBy:      userID,
		}
		if err := r.db.Create(&serial).Error; err != nil {
			return nil, err
		}
		return &serial, nil

	case LoadingTypeUnload:
		if !found {
			return nil, fmt.Errorf("Serial number %s not found", input.SerialNo)
		}
		if existing.Status != models.SerialStatusInVan {
			return nil, fmt.Errorf("Invalid serial status for %s: %s, expected %s",
				input.SerialNo, existing.Status, models.SerialStatusInVan)
		}
		existing.Status = models.SerialStatusAvailable
		existing.LocationID = &locationID
		existing.UpdatedBy = userID
		if err := r.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil

	default:
		return nil, fmt.Errorf("Invalid loading type: %s", loadingType)
	}
}
