package controllers

import (
	"errors"
	"time"

	"sfa-app/models"
	"sfa-app/repositories"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ProductBatchController struct {
	DB *gorm.DB
}

func NewProductBatchController(DB *gorm.DB) *ProductBatchController {
	return &ProductBatchController{DB: DB}
}

// GetBatchesForProduct lists the lots a product can draw from, FEFO ordered
// by default. include_expired=true skips the expiry and activity filters and
// returns the raw lot list for maintenance screens.
func (c *ProductBatchController) GetBatchesForProduct(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product models.Product
	if err := c.DB.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	loadingType := ctx.Query("loading_type", repositories.LoadingTypeLoad)
	includeExpired := ctx.QueryBool("include_expired", false)
	sortBy := ctx.Query("sort_by", "expiry_date")

	var lots []models.BatchLot
	if includeExpired {
		var rows []models.ProductBatch
		err := c.DB.Preload("BatchLot").
			Where("product_id = ?", productID).
			Find(&rows).Error
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		for _, row := range rows {
			if row.BatchLot != nil {
				lots = append(lots, *row.BatchLot)
			}
		}
	} else {
		batchRepo := repositories.NewBatchRepository(c.DB)
		lots, err = batchRepo.GetAvailableBatchesForProduct(uint(productID), loadingType)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	switch sortBy {
	case "batch_number":
		slices.SortFunc(lots, func(a, b models.BatchLot) int {
			switch {
			case a.BatchNumber < b.BatchNumber:
				return -1
			case a.BatchNumber > b.BatchNumber:
				return 1
			default:
				return 0
			}
		})
	case "remaining_quantity":
		slices.SortFunc(lots, func(a, b models.BatchLot) int {
			return b.RemainingQuantity - a.RemainingQuantity
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": lots})
}

func (c *ProductBatchController) GetBatchByID(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	batchID, err := ctx.ParamsInt("batchId")
	if err != nil || batchID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid batch ID"})
	}

	var row models.ProductBatch
	err = c.DB.Preload("BatchLot").
		Where("product_id = ? AND batch_lot_id = ?", productID, batchID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found for product"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": row})
}

type bulkBatchPayload struct {
	ProductID         uint       `json:"product_id" validate:"required"`
	BatchNumber       string     `json:"batch_number" validate:"required"`
	LotNumber         string     `json:"lot_number"`
	ManufacturingDate *time.Time `json:"manufacturing_date"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	Quantity          int        `json:"quantity" validate:"min=0"`
	QualityGrade      string     `json:"quality_grade"`
}

// BulkCreateBatches loads lot master data in one call, for initial stock
// intake. Lots created here start with remaining equal to quantity.
func (c *ProductBatchController) BulkCreateBatches(ctx *fiber.Ctx) error {
	var payload struct {
		Batches []bulkBatchPayload `json:"batches"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(payload.Batches) == 0 {
		return respondError(ctx, errors.New("At least one batch is required"))
	}

	operator := operatorID(ctx)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	created := make([]models.BatchLot, 0, len(payload.Batches))
	for _, b := range payload.Batches {
		if b.ProductID == 0 || b.BatchNumber == "" {
			tx.Rollback()
			return respondError(ctx, errors.New("Product ID and batch number are required"))
		}
		var product models.Product
		if err := tx.First(&product, b.ProductID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return respondError(ctx, errors.New("Product not found"))
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		lot := models.BatchLot{
			BatchNumber:       b.BatchNumber,
			LotNumber:         b.LotNumber,
			ManufacturingDate: b.ManufacturingDate,
			ExpiryDate:        b.ExpiryDate,
			Quantity:          b.Quantity,
			RemainingQuantity: b.Quantity,
			IsActive:          "Y",
			QualityGrade:      b.QualityGrade,
			CreatedBy:         operator,
			UpdatedBy:         operator,
		}
		if err := tx.Create(&lot).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		join := models.ProductBatch{
			ProductID:  b.ProductID,
			BatchLotID: lot.ID,
			Quantity:   b.Quantity,
			IsActive:   "Y",
			CreatedBy:  operator,
			UpdatedBy:  operator,
		}
		if err := tx.Create(&join).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		created = append(created, lot)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Batches created successfully", "data": created})
}
