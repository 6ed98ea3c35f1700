package models

import (
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	VehicleCode string  `json:"vehicle_code" gorm:"unique"`
	PlateNumber string  `json:"plate_number"`
	VehicleType string  `json:"vehicle_type"`
	Capacity    float64 `json:"capacity" gorm:"default:0"`
	DepotID     *uint   `json:"depot_id"`
	IsActive    string  `json:"is_active" gorm:"default:'Y'"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

type Depot struct {
	gorm.Model
	DepotCode string `json:"depot_code" gorm:"unique"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	IsActive  string `json:"is_active" gorm:"default:'Y'"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Customer struct {
	gorm.Model
	CustomerCode string `json:"customer_code" gorm:"unique"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	IsActive     string `json:"is_active" gorm:"default:'Y'"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
