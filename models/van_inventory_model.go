package models

import (
	"sfa-app/controllers/idgen"
	"sfa-app/types"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VanInventory struct {
	gorm.Model
	ID           types.SnowflakeID `json:"id" gorm:"primaryKey"`
	DocumentNo   string            `json:"document_no" gorm:"unique"`
	UserID       uint              `json:"user_id"`
	VehicleID    *uint             `json:"vehicle_id"`
	LocationID   int               `json:"location_id" gorm:"default:1"`
	LocationType string            `json:"location_type" gorm:"default:'van'"`
	LoadingType  string            `json:"loading_type" gorm:"default:'L'"`
	Status       string            `json:"status" gorm:"default:'A'"`
	DocumentDate time.Time         `json:"document_date"`
	IsActive     string            `json:"is_active" gorm:"default:'Y'"`
	LogInst      int               `json:"log_inst" gorm:"default:1"`
	Remarks      string            `json:"remarks"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	// Relations
	User    *User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Vehicle *Vehicle           `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Items   []VanInventoryItem `gorm:"foreignKey:VanInventoryID;references:ID;constraint:OnDelete:CASCADE" json:"items"`
}

func (v *VanInventory) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == 0 {
		v.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}

type VanInventoryItem struct {
	gorm.Model
	VanInventoryID types.SnowflakeID `json:"van_inventory_id" gorm:"default:null"`
	ProductID      uint              `json:"product_id"`
	Quantity       int               `json:"quantity"`
	UnitPrice      decimal.Decimal   `json:"unit_price" gorm:"type:decimal(15,2)"`
	DiscountAmount decimal.Decimal   `json:"discount_amount" gorm:"type:decimal(15,2)"`
	TaxAmount      decimal.Decimal   `json:"tax_amount" gorm:"type:decimal(15,2)"`
	TotalAmount    decimal.Decimal   `json:"total_amount" gorm:"type:decimal(15,2)"`
	BatchLotID     *uint             `json:"batch_lot_id"`
	Notes          string            `json:"notes"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int

	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	BatchLot *BatchLot `gorm:"foreignKey:BatchLotID" json:"batch_lot,omitempty"`
}
