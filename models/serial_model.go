package models

import (
	"time"

	"gorm.io/gorm"
)

// Serial number lifecycle states used by the van inventory flow. Anything
// else (sold, scrapped) is terminal as far as loading goes.
const (
	SerialStatusInVan     = "in_van"
	SerialStatusAvailable = "available"
	SerialStatusSold      = "sold"
)

type SerialNumber struct {
	gorm.Model
	SerialNo       string     `json:"serial_number" gorm:"unique"`
	ProductID      uint       `json:"product_id"`
	Status         string     `json:"status" gorm:"default:'available'"`
	BatchID        *uint      `json:"batch_id"`
	LocationID     *int       `json:"location_id"`
	CustomerID     *uint      `json:"customer_id"`
	WarrantyExpiry *time.Time `json:"warranty_expiry"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}
