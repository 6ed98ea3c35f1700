package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"sfa-app/models"
	"sfa-app/types"

	"gorm.io/gorm"
)

type VanInventoryRepository struct {
	db *gorm.DB
}

func NewVanInventoryRepository(db *gorm.DB) *VanInventoryRepository {
	return &VanInventoryRepository{db: db}
}

// GenerateDocumentNo builds the next document number, VI + YYMMDD + 4 digit
// sequence, resetting the sequence when the date changes.
func (r *VanInventoryRepository) GenerateDocumentNo() (string, error) {
	var last models.VanInventory

	if err := r.db.Order("document_no desc").First(&last).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	currentDate := time.Now().Format("060102")

	var documentNo string
	if last.DocumentNo != "" && len(last.DocumentNo) >= 12 {
		lastDatePart := last.DocumentNo[2:8]
		lastSequenceStr := last.DocumentNo[len(last.DocumentNo)-4:]

		if currentDate != lastDatePart {
			documentNo = fmt.Sprintf("VI%s%04d", currentDate, 1)
		} else {
			lastSequenceInt, _ := strconv.Atoi(lastSequenceStr)
			documentNo = fmt.Sprintf("VI%s%04d", currentDate, lastSequenceInt+1)
		}
	} else {
		documentNo = fmt.Sprintf("VI%s%04d", currentDate, 1)
	}

	return documentNo, nil
}

// GetByIDWithRelations reloads a document with everything the response needs.
func (r *VanInventoryRepository) GetByIDWithRelations(id types.SnowflakeID) (*models.VanInventory, error) {
	var doc models.VanInventory
	err := r.db.
		Preload("User").
		Preload("Vehicle").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.BatchLot").
		First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// SerialsForDocument finds the serial units a document touched, via its
// stock movement trail.
func (r *VanInventoryRepository) SerialsForDocument(id types.SnowflakeID, productID uint) ([]models.SerialNumber, error) {
	var serialIDs []uint
	err := r.db.Model(&models.StockMovement{}).
		Where("reference_type = ? AND reference_id = ? AND product_id = ? AND serial_id IS NOT NULL",
			ReferenceTypeVanInventory, int64(id), productID).
		Pluck("serial_id", &serialIDs).Error
	if err != nil {
		return nil, err
	}
	if len(serialIDs) == 0 {
		return []models.SerialNumber{}, nil
	}

	var serials []models.SerialNumber
	if err := r.db.Where("id IN ?", serialIDs).Find(&serials).Error; err != nil {
		return nil, err
	}
	return serials, nil
}
