// database/seeder.go
package database

import (
	"errors"
	"log"

	"sfa-app/models"
	"sfa-app/sfa/master/currency"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUoms(db)
	SeedDepots(db)
	SeedUserMaster(db)
	SeedProducts(db)
	currency.SeedCurrency(db)
}

func SeedUoms(db *gorm.DB) {
	uoms := []models.Uom{
		{Code: "PCS", Name: "PCS"},
		{Code: "BOX", Name: "BOX"},
	}

	for _, u := range uoms {
		var existing models.Uom
		if err := db.Where("code = ?", u.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&u)
			}
		}
	}
}

func SeedDepots(db *gorm.DB) {
	depots := []models.Depot{
		{DepotCode: "DEPOT-01", Name: "Main Depot", City: "Jakarta"},
	}

	for _, d := range depots {
		var existing models.Depot
		if err := db.Where("depot_code = ?", d.DepotCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&d)
			}
		}
	}
}

func SeedUserMaster(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash seed password:", err)
		return
	}

	users := []models.User{
		{
			Username: "admin",
			Password: string(hashed),
			Name:     "Admin",
			Email:    "admin@example.com",
			Role:     "admin",
			IsActive: "Y",
		},
	}

	for _, user := range users {
		var existing models.User
		err := db.Where("email = ?", user.Email).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&user).Error; err != nil {
				log.Println("Failed to insert user:", user.Username, err)
			} else {
				log.Println("Insert user:", user.Username)
			}
		}
	}
}

func SeedProducts(db *gorm.DB) {
	products := []models.Product{
		{ItemCode: "SKU-NONE-001", ItemName: "Bottled Water 600ml", TrackingType: models.TrackingNone, Uom: "PCS", IsActive: "Y"},
		{ItemCode: "SKU-BATCH-001", ItemName: "Instant Noodle Carton", TrackingType: models.TrackingBatch, Uom: "BOX", IsActive: "Y"},
		{ItemCode: "SKU-SERIAL-001", ItemName: "Water Dispenser", TrackingType: models.TrackingSerial, Uom: "PCS", IsActive: "Y"},
	}

	for _, p := range products {
		var existing models.Product
		if err := db.Where("item_code = ?", p.ItemCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&p)
			}
		}
	}
}
