package models

import "gorm.io/gorm"

// Tracking types supported per product.
const (
	TrackingBatch  = "batch"
	TrackingSerial = "serial"
	TrackingNone   = "none"
)

type Product struct {
	gorm.Model
	ItemCode     string  `json:"item_code" gorm:"unique"`
	ItemName     string  `json:"item_name"`
	Barcode      string  `json:"barcode"`
	TrackingType string  `json:"tracking_type" gorm:"default:'none'"`
	Uom          string  `json:"uom"`
	BaseUomID    uint    `json:"base_uom_id"`
	Category     string  `json:"category"`
	GrossWeight  float64 `json:"gross_weight" gorm:"default:0"`
	NetWeight    float64 `json:"net_weight" gorm:"default:0"`
	IsActive     string  `json:"is_active" gorm:"default:'Y'"`
	Remarks      string  `json:"remarks"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	Batches []ProductBatch `gorm:"foreignKey:ProductID" json:"batches,omitempty"`
}

type Uom struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"unique" json:"code"`
	Name string `json:"name"`
}
