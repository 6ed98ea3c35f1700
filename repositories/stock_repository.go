package repositories

import (
	"errors"
	"fmt"
	"time"

	"sfa-app/config"
	"sfa-app/models"

	"gorm.io/gorm"
)

// ReferenceTypeVanInventory ties stock movements back to the document
// that produced them.
const ReferenceTypeVanInventory = "van_inventory"

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

// UpdateInventoryStock adjusts the stock row keyed by
// (product, location, batch?, serial?). Loading creates the row when absent,
// unloading fails rather than going negative.
func (r *StockRepository) UpdateInventoryStock(productID uint, locationID int, quantity int, loadingType string, batchID *uint, serialID *uint, userID int) error {
	if locationID == 0 {
		locationID = config.DefaultDepotID
	}

	query := lockForUpdate(r.db).Where("product_id = ? AND location_id = ?", productID, locationID)
	if batchID != nil {
		query = query.Where("batch_id = ?", *batchID)
	} else {
		query = query.Where("batch_id IS NULL")
	}
	if serialID != nil {
		query = query.Where("serial_number_id = ?", *serialID)
	} else {
		query = query.Where("serial_number_id IS NULL")
	}

	var stock models.InventoryStock
	err := query.First(&stock).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	switch loadingType {
	case LoadingTypeLoad:
		if !found {
			stock = models.InventoryStock{
				ProductID:      productID,
				LocationID:     locationID,
				BatchID:        batchID,
				SerialNumberID: serialID,
				CurrentStock:   quantity,
				AvailableStock: quantity,
				CreatedBy:      userID,
				UpdatedBy:      userID,
			}
			return r.db.Create(&stock).Error
		}
		stock.CurrentStock += quantity
		stock.AvailableStock += quantity

	case LoadingTypeUnload:
		if !found {
			return fmt.Errorf("Insufficient stock for product %d at location %d", productID, locationID)
		}
		if stock.CurrentStock-quantity < 0 {
			return fmt.Errorf("Insufficient stock for product %d at location %d: available %d, requested %d",
				productID, locationID, stock.CurrentStock, quantity)
		}
		stock.CurrentStock -= quantity
		stock.AvailableStock -= quantity

	default:
		return fmt.Errorf("Invalid loading type: %s", loadingType)
	}

	stock.UpdatedBy = userID
	return r.db.Save(&stock).Error
}

// CreateStockMovement appends one audit row. Movement rows are never read
// back by this flow, only inserted.
func (r *StockRepository) CreateStockMovement(m *models.StockMovement) error {
	if m.MovementDate.IsZero() {
		m.MovementDate = time.Now()
	}
	return r.db.Create(m).Error
}

type StockOnHandRow struct {
	ItemCode     string `json:"item_code"`
	ItemName     string `json:"item_name"`
	TrackingType string `json:"tracking_type"`
	LocationID   int    `json:"location_id"`
	CurrentStock int    `json:"current_stock"`
}

// GetStockOnHand aggregates current stock per product and location.
func (r *StockRepository) GetStockOnHand() ([]StockOnHandRow, error) {
	sqlStock := `select p.item_code, p.item_name, p.tracking_type,
	s.location_id, sum(s.current_stock) as current_stock
	from inventory_stocks s
	inner join products p on s.product_id = p.id
	where s.deleted_at is null
	group by p.item_code, p.item_name, p.tracking_type, s.location_id`

	var rows []StockOnHandRow
	if err := r.db.Raw(sqlStock).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// GetMovements returns the movement history, newest first, optionally
// filtered by product and movement type.
func (r *StockRepository) GetMovements(productID uint, movementType string, limit int) ([]models.StockMovement, error) {
	query := r.db.Order("movement_date desc")
	if productID > 0 {
		query = query.Where("product_id = ?", productID)
	}
	if movementType != "" {
		query = query.Where("movement_type = ?", movementType)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var movements []models.StockMovement
	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}
