package models

import (
	"time"

	"gorm.io/gorm"
)

// BatchLot is one manufactured lot of a batch-tracked product. RemainingQuantity
// is the running ledger balance, Quantity the original lot size.
type BatchLot struct {
	gorm.Model
	BatchNumber       string     `json:"batch_number" gorm:"unique"`
	LotNumber         string     `json:"lot_number"`
	ManufacturingDate *time.Time `json:"manufacturing_date"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	Quantity          int        `json:"quantity" gorm:"default:0"`
	RemainingQuantity int        `json:"remaining_quantity" gorm:"default:0"`
	IsActive          string     `json:"is_active" gorm:"default:'Y'"`
	QualityGrade      string     `json:"quality_grade"`
	CreatedBy         int
	UpdatedBy         int
	DeletedBy         int
}

// ProductBatch joins a product to a batch lot and carries its own quantity
// counter, maintained in step with BatchLot.RemainingQuantity.
type ProductBatch struct {
	gorm.Model
	ProductID  uint   `json:"product_id"`
	BatchLotID uint   `json:"batch_lot_id"`
	Quantity   int    `json:"quantity" gorm:"default:0"`
	IsActive   string `json:"is_active" gorm:"default:'Y'"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int

	BatchLot *BatchLot `gorm:"foreignKey:BatchLotID" json:"batch_lot,omitempty"`
}
