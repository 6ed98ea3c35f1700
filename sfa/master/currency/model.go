package currency

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Currency struct {
	gorm.Model
	Code         string          `json:"code" gorm:"unique"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	ExchangeRate decimal.Decimal `json:"exchange_rate" gorm:"type:decimal(15,6)"`
	IsBase       bool            `json:"is_base" gorm:"default:false"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
