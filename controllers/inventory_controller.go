package controllers

import (
	"fmt"
	"net/http"
	"time"

	"sfa-app/models"
	"sfa-app/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(DB *gorm.DB) *InventoryController {
	return &InventoryController{DB: DB}
}

func (c *InventoryController) GetStockOnHand(ctx *fiber.Ctx) error {
	stockRepo := repositories.NewStockRepository(c.DB)
	rows, err := stockRepo.GetStockOnHand()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"stock": rows}})
}

// Handler to generate and stream the stock-on-hand Excel report
func (c *InventoryController) ExportExcel(ctx *fiber.Ctx) error {
	stockRepo := repositories.NewStockRepository(c.DB)
	rows, err := stockRepo.GetStockOnHand()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Item Code")
	f.SetCellValue(sheet, "B1", "Item Name")
	f.SetCellValue(sheet, "C1", "Tracking Type")
	f.SetCellValue(sheet, "D1", "Location")
	f.SetCellValue(sheet, "E1", "Current Stock")

	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.ItemCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), row.TrackingType)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), row.LocationID)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), row.CurrentStock)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="stock_report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}

func (c *InventoryController) GetMovements(ctx *fiber.Ctx) error {
	productID := uint(ctx.QueryInt("product_id", 0))
	movementType := ctx.Query("movement_type")
	limit := ctx.QueryInt("limit", 100)

	stockRepo := repositories.NewStockRepository(c.DB)
	movements, err := stockRepo.GetMovements(productID, movementType, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": movements})
}

// CreateDummyStock fills inventory_stocks with random rows for load testing.
func (c *InventoryController) CreateDummyStock(ctx *fiber.Ctx) error {
	count := ctx.QueryInt("count", 100)

	var products []models.Product
	if err := c.DB.Limit(50).Find(&products).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(products) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No products to generate stock for"})
	}

	rand.Seed(uint64(time.Now().UnixNano()))

	var stocks []models.InventoryStock
	for i := 0; i < count; i++ {
		product := products[rand.Intn(len(products))]
		qty := rand.Intn(500)
		stocks = append(stocks, models.InventoryStock{
			ProductID:      product.ID,
			LocationID:     rand.Intn(10) + 1,
			CurrentStock:   qty,
			AvailableStock: qty,
			CreatedBy:      operatorID(ctx),
			UpdatedBy:      operatorID(ctx),
		})
	}

	if err := c.DB.Create(&stocks).Error; err != nil {
		return ctx.Status(500).JSON(fiber.Map{
			"error": "Failed to insert dummy data to database, error: " + err.Error(),
		})
	}

	return ctx.Status(200).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"created": len(stocks)},
	})
}
