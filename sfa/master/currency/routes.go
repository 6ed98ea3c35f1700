package currency

import (
	"sfa-app/config"
	"sfa-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCurrencyRoutes(app *fiber.App, db *gorm.DB) {
	currencyHandler := NewCurrencyHandler(db)

	api := app.Group(config.MAIN_ROUTES+"/currencies", middleware.AuthMiddleware(db))
	api.Get("/", currencyHandler.GetAllCurrencies)
	api.Post("/", currencyHandler.CreateCurrency)
	api.Put("/:id", currencyHandler.UpdateCurrency)
	api.Delete("/:id", currencyHandler.DeleteCurrency)
}
