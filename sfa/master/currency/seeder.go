package currency

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func SeedCurrency(db *gorm.DB) {
	currencies := []Currency{
		{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp", ExchangeRate: decimal.NewFromInt(1), IsBase: true},
		{Code: "USD", Name: "US Dollar", Symbol: "$", ExchangeRate: decimal.NewFromInt(16400)},
	}

	for _, c := range currencies {
		var existing Currency
		if err := db.Where("code = ?", c.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&c)
			}
		}
	}
}
