package controllers

import (
	"errors"

	"sfa-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DepotController struct {
	DB *gorm.DB
}

func NewDepotController(DB *gorm.DB) *DepotController {
	return &DepotController{DB: DB}
}

func (c *DepotController) CreateDepot(ctx *fiber.Ctx) error {
	var input struct {
		DepotCode string `json:"depot_code" validate:"required,min=2"`
		Name      string `json:"name" validate:"required"`
		Address   string `json:"address"`
		City      string `json:"city"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	depot := models.Depot{
		DepotCode: input.DepotCode,
		Name:      input.Name,
		Address:   input.Address,
		City:      input.City,
		IsActive:  "Y",
		CreatedBy: operatorID(ctx),
		UpdatedBy: operatorID(ctx),
	}

	if err := c.DB.Create(&depot).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Depot created successfully", "data": depot})
}

func (c *DepotController) GetAllDepots(ctx *fiber.Ctx) error {
	var depots []models.Depot
	if err := c.DB.Find(&depots).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": depots})
}

func (c *DepotController) UpdateDepot(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var depot models.Depot
	if err := c.DB.First(&depot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Depot not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input map[string]interface{}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	delete(input, "id")
	input["updated_by"] = operatorID(ctx)

	if err := c.DB.Model(&depot).Updates(input).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Depot updated successfully", "data": depot})
}

func (c *DepotController) DeleteDepot(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var depot models.Depot
	if err := c.DB.First(&depot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Depot not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&depot).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Depot deleted successfully"})
}
