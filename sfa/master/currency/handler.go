package currency

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CurrencyHandler struct {
	DB *gorm.DB
}

func NewCurrencyHandler(db *gorm.DB) *CurrencyHandler {
	return &CurrencyHandler{DB: db}
}

func (h *CurrencyHandler) GetAllCurrencies(ctx *fiber.Ctx) error {
	var currencies []Currency
	if err := h.DB.Find(&currencies).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve currencies",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Currencies retrieved successfully",
		"data":    currencies,
	})
}

func (h *CurrencyHandler) CreateCurrency(ctx *fiber.Ctx) error {
	var currency Currency
	if err := ctx.BodyParser(&currency); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if currency.Code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Currency code is required"})
	}
	if err := h.DB.Create(&currency).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Currency created successfully",
		"data":    currency,
	})
}

func (h *CurrencyHandler) UpdateCurrency(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var currency Currency
	if err := h.DB.First(&currency, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Currency not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input Currency
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	currency.Name = input.Name
	currency.Symbol = input.Symbol
	currency.ExchangeRate = input.ExchangeRate
	currency.IsBase = input.IsBase
	if err := h.DB.Save(&currency).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Currency updated successfully",
		"data":    currency,
	})
}

func (h *CurrencyHandler) DeleteCurrency(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	if err := h.DB.Delete(&Currency{}, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Currency deleted successfully",
	})
}
