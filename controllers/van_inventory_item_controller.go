package controllers

import (
	"errors"

	"sfa-app/models"
	"sfa-app/types"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item sub-resource handlers. These are plain row operations on the line
// table; ledger math only runs through the full document submission.

func (c *VanInventoryController) parseDocumentID(ctx *fiber.Ctx) (types.SnowflakeID, *models.VanInventory, error) {
	var id types.SnowflakeID
	if err := id.UnmarshalJSON([]byte(`"` + ctx.Params("id") + `"`)); err != nil {
		return 0, nil, errors.New("Invalid ID")
	}

	var doc models.VanInventory
	if err := c.DB.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, errors.New("Van inventory not found")
		}
		return 0, nil, err
	}
	return id, &doc, nil
}

func (c *VanInventoryController) GetItems(ctx *fiber.Ctx) error {
	id, _, err := c.parseDocumentID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var items []models.VanInventoryItem
	if err := c.DB.Preload("Product").Preload("BatchLot").
		Where("van_inventory_id = ?", id).Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": items})
}

func (c *VanInventoryController) SaveItem(ctx *fiber.Ctx) error {
	id, _, err := c.parseDocumentID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var payload VanInventoryItemPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.Quantity <= 0 {
		return respondError(ctx, errors.New("Quantity must be a positive number"))
	}

	var product models.Product
	if err := c.DB.First(&product, payload.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(ctx, errors.New("Product not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	total := decimal.NewFromInt(int64(payload.Quantity)).Mul(payload.UnitPrice).
		Sub(payload.DiscountAmount).Add(payload.TaxAmount)

	row := models.VanInventoryItem{
		VanInventoryID: id,
		ProductID:      payload.ProductID,
		Quantity:       payload.Quantity,
		UnitPrice:      payload.UnitPrice,
		DiscountAmount: payload.DiscountAmount,
		TaxAmount:      payload.TaxAmount,
		TotalAmount:    total,
		BatchLotID:     payload.BatchLotID,
		Notes:          payload.Notes,
		CreatedBy:      operatorID(ctx),
		UpdatedBy:      operatorID(ctx),
	}
	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Item saved successfully", "data": row})
}

func (c *VanInventoryController) UpdateItem(ctx *fiber.Ctx) error {
	id, _, err := c.parseDocumentID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := ctx.ParamsInt("itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var row models.VanInventoryItem
	if err := c.DB.First(&row, "id = ? AND van_inventory_id = ?", itemID, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var payload VanInventoryItemPayload
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if payload.Quantity <= 0 {
		return respondError(ctx, errors.New("Quantity must be a positive number"))
	}

	row.Quantity = payload.Quantity
	row.UnitPrice = payload.UnitPrice
	row.DiscountAmount = payload.DiscountAmount
	row.TaxAmount = payload.TaxAmount
	row.TotalAmount = decimal.NewFromInt(int64(payload.Quantity)).Mul(payload.UnitPrice).
		Sub(payload.DiscountAmount).Add(payload.TaxAmount)
	row.Notes = payload.Notes
	if payload.BatchLotID != nil {
		row.BatchLotID = payload.BatchLotID
	}
	row.UpdatedBy = operatorID(ctx)

	if err := c.DB.Save(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item updated successfully", "data": row})
}

func (c *VanInventoryController) DeleteItem(ctx *fiber.Ctx) error {
	id, _, err := c.parseDocumentID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID, err := ctx.ParamsInt("itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var row models.VanInventoryItem
	if err := c.DB.First(&row, "id = ? AND van_inventory_id = ?", itemID, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// hard delete
	if err := c.DB.Unscoped().Delete(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item deleted successfully"})
}

// BulkReplaceItems swaps the whole line set for the submitted one.
func (c *VanInventoryController) BulkReplaceItems(ctx *fiber.Ctx) error {
	id, _, err := c.parseDocumentID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var payload struct {
		Items []VanInventoryItemPayload `json:"van_inventory_items"`
	}
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	operator := operatorID(ctx)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Unscoped().Where("van_inventory_id = ?", id).Delete(&models.VanInventoryItem{}).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	for _, item := range payload.Items {
		if item.Quantity <= 0 {
			tx.Rollback()
			return respondError(ctx, errors.New("Quantity must be a positive number"))
		}
		total := decimal.NewFromInt(int64(item.Quantity)).Mul(item.UnitPrice).
			Sub(item.DiscountAmount).Add(item.TaxAmount)
		row := models.VanInventoryItem{
			VanInventoryID: id,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			DiscountAmount: item.DiscountAmount,
			TaxAmount:      item.TaxAmount,
			TotalAmount:    total,
			BatchLotID:     item.BatchLotID,
			Notes:          item.Notes,
			CreatedBy:      operator,
			UpdatedBy:      operator,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Items replaced successfully"})
}
