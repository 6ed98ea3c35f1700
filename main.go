package main

import (
	"fmt"
	"log"

	"sfa-app/config"
	"sfa-app/controllers/idgen"
	"sfa-app/database"
	"sfa-app/routes"
	"sfa-app/sfa/master/currency"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {

	config.LoadConfig()
	config.InitLogger()
	defer config.Logger.Sync()

	app := fiber.New()

	db, err := config.OpenDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupProductRoutes(app, db)
	routes.SetupVehicleRoutes(app, db)
	routes.SetupDepotRoutes(app, db)
	routes.SetupCustomerRoutes(app, db)
	routes.SetupVanInventoryRoutes(app, db)
	routes.SetupInventoryRoutes(app, db)
	currency.SetupCurrencyRoutes(app, db)

	port := config.APP_PORT
	config.Logger.Info("server starting", zap.String("port", port))
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
