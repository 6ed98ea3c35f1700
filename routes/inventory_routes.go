package routes

import (
	"sfa-app/config"
	"sfa-app/controllers"
	"sfa-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInventoryRoutes(app *fiber.App, db *gorm.DB) {
	inventoryController := controllers.NewInventoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/inventory", middleware.AuthMiddleware(db))
	api.Get("/", inventoryController.GetStockOnHand)
	api.Get("/excel", inventoryController.ExportExcel)
	api.Get("/movements", inventoryController.GetMovements)
	api.Post("/dummy", inventoryController.CreateDummyStock)
}
