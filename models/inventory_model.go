package models

import (
	"time"

	"gorm.io/gorm"
)

// InventoryStock is the current stock snapshot for one
// (product, location, batch?, serial?) key.
type InventoryStock struct {
	gorm.Model
	ProductID      uint  `json:"product_id"`
	LocationID     int   `json:"location_id"`
	BatchID        *uint `json:"batch_id"`
	SerialNumberID *uint `json:"serial_number_id"`
	CurrentStock   int   `json:"current_stock" gorm:"default:0"`
	AvailableStock int   `json:"available_stock" gorm:"default:0"`
	ReservedStock  int   `json:"reserved_stock" gorm:"default:0"`
	MinStockLevel  int   `json:"min_stock_level" gorm:"default:0"`
	MaxStockLevel  int   `json:"max_stock_level" gorm:"default:0"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

// StockMovement is an append-only audit row, one per quantity change.
// Rows are never updated or deleted.
type StockMovement struct {
	gorm.Model
	ProductID      uint      `json:"product_id"`
	BatchID        *uint     `json:"batch_id"`
	SerialID       *uint     `json:"serial_id"`
	MovementType   string    `json:"movement_type"`
	ReferenceType  string    `json:"reference_type"`
	ReferenceID    int64     `json:"reference_id"`
	FromLocationID *int      `json:"from_location_id"`
	ToLocationID   *int      `json:"to_location_id"`
	Quantity       int       `json:"quantity"`
	MovementDate   time.Time `json:"movement_date"`
	Remarks        string    `json:"remarks"`
	CreatedBy      int
}
