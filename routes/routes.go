package routes

import (
	"app/handlers"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Dashboard Routes ---
	dashboard := api.Group("/dashboard")
	dashboard.Get("/snapshot", handlers.HandleGetDashboardSnapshot)
	dashboard.Get("/kpis", handlers.HandleGetKPIs)
	dashboard.Get("/charts/:mode", handlers.HandleGetChart)
	dashboard.Get("/inventory", handlers.HandleGetInventoryStatus)
	dashboard.Get("/inventory/alerts", handlers.HandleListStockAlerts)
	dashboard.Get("/filters/options", handlers.HandleGetFilterOptions)
	dashboard.Post("/refresh", handlers.HandleRefresh)
}
