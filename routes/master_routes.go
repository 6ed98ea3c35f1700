package routes

import (
	"sfa-app/config"
	"sfa-app/controllers"
	"sfa-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVehicleRoutes(app *fiber.App, db *gorm.DB) {
	vehicleController := controllers.NewVehicleController(db)

	api := app.Group(config.MAIN_ROUTES+"/vehicles", middleware.AuthMiddleware(db))
	api.Post("/", vehicleController.CreateVehicle)
	api.Get("/", vehicleController.GetAllVehicles)
	api.Get("/:id", vehicleController.GetVehicleByID)
	api.Put("/:id", vehicleController.UpdateVehicle)
	api.Delete("/:id", vehicleController.DeleteVehicle)
}

func SetupDepotRoutes(app *fiber.App, db *gorm.DB) {
	depotController := controllers.NewDepotController(db)

	api := app.Group(config.MAIN_ROUTES+"/depots", middleware.AuthMiddleware(db))
	api.Post("/", depotController.CreateDepot)
	api.Get("/", depotController.GetAllDepots)
	api.Put("/:id", depotController.UpdateDepot)
	api.Delete("/:id", depotController.DeleteDepot)
}

func SetupCustomerRoutes(app *fiber.App, db *gorm.DB) {
	customerController := controllers.NewCustomerController(db)

	api := app.Group(config.MAIN_ROUTES+"/customers", middleware.AuthMiddleware(db))
	api.Post("/", customerController.CreateCustomer)
	api.Get("/", customerController.GetAllCustomers)
	api.Put("/:id", customerController.UpdateCustomer)
	api.Delete("/:id", customerController.DeleteCustomer)
}

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware(db))
	api.Post("/", userController.CreateUser)
	api.Get("/", userController.GetAllUsers)
	api.Get("/:id", userController.GetUserByID)
	api.Put("/:id", userController.UpdateUser)
	api.Delete("/:id", userController.DeleteUser)
}
