package routes

import (
	"sfa-app/config"
	"sfa-app/controllers"
	"sfa-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controllers.NewProductController(db)
	productBatchController := controllers.NewProductBatchController(db)

	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware(db))

	api.Post("/", productController.CreateProduct)
	api.Get("/", productController.GetAllProducts)
	api.Post("/batches/bulk", productBatchController.BulkCreateBatches)
	api.Get("/:productId/batches", productBatchController.GetBatchesForProduct)
	api.Get("/:productId/batches/:batchId", productBatchController.GetBatchByID)
	api.Get("/:id", productController.GetProductByID)
	api.Put("/:id", productController.UpdateProduct)
	api.Delete("/:id", productController.DeleteProduct)
}
