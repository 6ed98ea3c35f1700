package routes

import (
	"sfa-app/config"
	"sfa-app/controllers"
	"sfa-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)

	apiLogout := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware(db))
	apiLogout.Get("/logout", authController.Logout)
}
