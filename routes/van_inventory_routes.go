package routes

import (
	"sfa-app/config"
	"sfa-app/controllers"
	"sfa-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVanInventoryRoutes(app *fiber.App, db *gorm.DB) {
	vanInventoryController := controllers.NewVanInventoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/van-inventory", middleware.AuthMiddleware(db))

	api.Post("/", vanInventoryController.CreateOrUpdateVanInventory)
	api.Get("/", vanInventoryController.GetAllVanInventories)
	api.Get("/:id", vanInventoryController.GetVanInventoryByID)
	api.Put("/:id", vanInventoryController.UpdateVanInventoryHeader)
	api.Delete("/:id", vanInventoryController.DeleteVanInventory)

	api.Get("/:id/items", vanInventoryController.GetItems)
	api.Post("/:id/items", vanInventoryController.SaveItem)
	api.Put("/:id/items", vanInventoryController.BulkReplaceItems)
	api.Put("/:id/items/:itemId", vanInventoryController.UpdateItem)
	api.Delete("/:id/items/:itemId", vanInventoryController.DeleteItem)
}
