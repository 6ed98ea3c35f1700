package repositories

import (
	"errors"
	"fmt"
	"time"

	"sfa-app/config"
	"sfa-app/models"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Loading directions for van inventory documents. "L" loads the van,
// "U" unloads it back into stock. Note the ledger polarity: loading
// increases BatchLot.RemainingQuantity, unloading decreases it. This
// mirrors the legacy system exactly; see DESIGN.md before changing it.
const (
	LoadingTypeLoad   = "L"
	LoadingTypeUnload = "U"
)

// BatchData carries optional lot attributes supplied with a line item
// when the batch does not exist yet.
type BatchData struct {
	BatchNumber       string     `json:"batch_number"`
	LotNumber         string     `json:"lot_number"`
	ManufacturingDate *time.Time `json:"manufacturing_date"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	QualityGrade      string     `json:"quality_grade"`
}

type BatchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

// lockForUpdate takes a row lock so two documents hitting the same lot
// cannot interleave their read-modify-write. sqlite has no row locks.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// UpdateBatchLotQuantity applies one quantity change to a batch lot ledger.
func (r *BatchRepository) UpdateBatchLotQuantity(batchLotID uint, quantity int, loadingType string) error {
	if batchLotID == 0 {
		return errors.New("Batch lot ID is required")
	}

	var lot models.BatchLot
	if err := lockForUpdate(r.db).First(&lot, batchLotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("Batch lot %d not found", batchLotID)
		}
		return err
	}

	if lot.IsActive != "Y" {
		return fmt.Errorf("Batch lot %s is not active", lot.BatchNumber)
	}
	if lot.ExpiryDate != nil && lot.ExpiryDate.Before(time.Now()) {
		return fmt.Errorf("Batch lot %s has expired", lot.BatchNumber)
	}

	switch loadingType {
	case LoadingTypeLoad:
		lot.RemainingQuantity += quantity
	case LoadingTypeUnload:
		if lot.RemainingQuantity-quantity < 0 {
			return fmt.Errorf("Insufficient quantity in batch %s: available %d, requested %d",
				lot.BatchNumber, lot.RemainingQuantity, quantity)
		}
		lot.RemainingQuantity -= quantity
	default:
		return fmt.Errorf("Invalid loading type: %s", loadingType)
	}

	return r.db.Model(&models.BatchLot{}).Where("id = ?", lot.ID).
		Updates(map[string]interface{}{
			"remaining_quantity": lot.RemainingQuantity,
			"updated_at":         time.Now(),
		}).Error
}

// UpdateProductBatchQuantity applies the same change to the parallel
// product-batch counter for the (product, batch lot) pair.
func (r *BatchRepository) UpdateProductBatchQuantity(productID uint, batchLotID uint, quantity int, loadingType string) error {
	if batchLotID == 0 {
		return errors.New("Batch lot ID is required")
	}

	var pb models.ProductBatch
	err := lockForUpdate(r.db).
		Where("product_id = ? AND batch_lot_id = ? AND is_active = ?", productID, batchLotID, "Y").
		First(&pb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("Product batch not found for product %d and batch lot %d", productID, batchLotID)
		}
		return err
	}

	switch loadingType {
	case LoadingTypeLoad:
		pb.Quantity += quantity
	case LoadingTypeUnload:
		if pb.Quantity-quantity < 0 {
			return fmt.Errorf("Insufficient quantity in product batch: available %d, requested %d",
				pb.Quantity, quantity)
		}
		pb.Quantity -= quantity
	default:
		return fmt.Errorf("Invalid loading type: %s", loadingType)
	}

	return r.db.Model(&models.ProductBatch{}).Where("id = ?", pb.ID).
		Updates(map[string]interface{}{
			"quantity":   pb.Quantity,
			"updated_at": time.Now(),
		}).Error
}

// ReverseBatchLotQuantity is the best-effort inverse of UpdateBatchLotQuantity,
// used on compensation paths. The result is clamped into [0, Quantity] and a
// missing lot is a no-op, since the target may already be gone during cleanup.
func (r *BatchRepository) ReverseBatchLotQuantity(batchLotID uint, quantity int, loadingType string) error {
	if batchLotID == 0 {
		return nil
	}

	var lot models.BatchLot
	if err := r.db.First(&lot, batchLotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			config.Logger.Warn("batch lot missing during reversal",
				zap.Uint("batch_lot_id", batchLotID))
			return nil
		}
		return err
	}

	next := lot.RemainingQuantity
	if loadingType == LoadingTypeLoad {
		next -= quantity
	} else {
		next += quantity
	}
	if next < 0 {
		next = 0
	}
	if next > lot.Quantity {
		next = lot.Quantity
	}

	return r.db.Model(&models.BatchLot{}).Where("id = ?", lot.ID).
		Update("remaining_quantity", next).Error
}

// ReverseProductBatchQuantity mirrors ReverseBatchLotQuantity for the
// product-batch counter.
func (r *BatchRepository) ReverseProductBatchQuantity(productID uint, batchLotID uint, quantity int, loadingType string) error {
	if batchLotID == 0 {
		return nil
	}

	var pb models.ProductBatch
	err := r.db.
		Where("product_id = ? AND batch_lot_id = ?", productID, batchLotID).
		First(&pb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			config.Logger.Warn("product batch missing during reversal",
				zap.Uint("product_id", productID),
				zap.Uint("batch_lot_id", batchLotID))
			return nil
		}
		return err
	}

	next := pb.Quantity
	if loadingType == LoadingTypeLoad {
		next -= quantity
	} else {
		next += quantity
	}
	if next < 0 {
		next = 0
	}

	return r.db.Model(&models.ProductBatch{}).Where("id = ?", pb.ID).
		Update("quantity", next).Error
}

// FilterAvailableBatches drops join rows whose lot is unusable and sorts the
// survivors first-expiry-first-out. Lots without an expiry date sort last.
// When loading, lots with nothing left are skipped as well.
func FilterAvailableBatches(rows []models.ProductBatch, loadingType string, now time.Time) []models.BatchLot {
	var lots []models.BatchLot
	for _, row := range rows {
		lot := row.BatchLot
		if lot == nil || lot.IsActive != "Y" {
			continue
		}
		if lot.ExpiryDate != nil && !lot.ExpiryDate.After(now) {
			continue
		}
		if loadingType == LoadingTypeLoad && lot.RemainingQuantity <= 0 {
			continue
		}
		lots = append(lots, *lot)
	}

	slices.SortFunc(lots, func(a, b models.BatchLot) int {
		switch {
		case a.ExpiryDate == nil && b.ExpiryDate == nil:
			return 0
		case a.ExpiryDate == nil:
			return 1
		case b.ExpiryDate == nil:
			return -1
		case a.ExpiryDate.Before(*b.ExpiryDate):
			return -1
		case a.ExpiryDate.After(*b.ExpiryDate):
			return 1
		default:
			return 0
		}
	})

	return lots
}

// GetAvailableBatchesForProduct lists the lots a line item may draw from,
// FEFO ordered.
func (r *BatchRepository) GetAvailableBatchesForProduct(productID uint, loadingType string) ([]models.BatchLot, error) {
	var rows []models.ProductBatch
	err := r.db.Preload("BatchLot").
		Where("product_id = ? AND is_active = ?", productID, "Y").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return FilterAvailableBatches(rows, loadingType, time.Now()), nil
}

// CreateOrGetBatchForProduct returns the first active lot for the product,
// creating one (plus its join row) when none exists. New lots start at zero
// quantity so the first ledger update establishes the real balance.
func (r *BatchRepository) CreateOrGetBatchForProduct(productID uint, userID int, batchData *BatchData) (*models.BatchLot, error) {
	var product models.Product
	if err := r.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("Product %d not found", productID)
		}
		return nil, err
	}

	var existing models.ProductBatch
	err := r.db.Preload("BatchLot").
		Where("product_id = ? AND is_active = ?", productID, "Y").
		First(&existing).Error
	if err == nil && existing.BatchLot != nil {
		return existing.BatchLot, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	lot := models.BatchLot{
		BatchNumber: fmt.Sprintf("B-%s-%d", product.ItemCode, now.UnixMilli()),
		LotNumber:   fmt.Sprintf("L-%s-%d", product.ItemCode, now.UnixMilli()),
		IsActive:    "Y",
		CreatedBy:   userID,
		UpdatedBy:   userID,
	}

	defaultExpiry := now.AddDate(2, 0, 0)
	lot.ExpiryDate = &defaultExpiry

	if batchData != nil {
		if batchData.BatchNumber != "" {
			lot.BatchNumber = batchData.BatchNumber
		}
		if batchData.LotNumber != "" {
			lot.LotNumber = batchData.LotNumber
		}
		if batchData.ManufacturingDate != nil {
			lot.ManufacturingDate = batchData.ManufacturingDate
		}
		if batchData.ExpiryDate != nil {
			lot.ExpiryDate = batchData.ExpiryDate
		}
		lot.QualityGrade = batchData.QualityGrade
	}

	if err := r.db.Create(&lot).Error; err != nil {
		return nil, err
	}

	join := models.ProductBatch{
		ProductID:  productID,
		BatchLotID: lot.ID,
		IsActive:   "Y",
		CreatedBy:  userID,
		UpdatedBy:  userID,
	}
	if err := r.db.Create(&join).Error; err != nil {
		return nil, err
	}

	return &lot, nil
}
