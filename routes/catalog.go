package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/controllers"
	"github.com/glowslot/salon-booking/middleware"
	"github.com/glowslot/salon-booking/models"
)

// SetupCatalogRoutes configures service, category and bundle routes.
// Reads are public for the booking widget; writes are admin-only.
func SetupCatalogRoutes(app *fiber.App) {
	admin := middleware.RequireRole(models.RoleAdmin)

	services := app.Group("/services")
	services.Get("/", controllers.GetAllServices)
	services.Get("/:id", controllers.GetService)
	services.Post("/", middleware.Protected(), admin, controllers.CreateService)
	services.Patch("/:id", middleware.Protected(), admin, controllers.UpdateService)
	services.Delete("/:id", middleware.Protected(), admin, controllers.DeleteService)

	categories := app.Group("/categories")
	categories.Get("/", controllers.GetAllCategories)
	categories.Post("/", middleware.Protected(), admin, controllers.CreateCategory)
	categories.Patch("/:id", middleware.Protected(), admin, controllers.UpdateCategory)
	categories.Delete("/:id", middleware.Protected(), admin, controllers.DeleteCategory)

	bundles := app.Group("/bundles")
	bundles.Get("/", controllers.GetAllBundles)
	bundles.Get("/:id", controllers.GetBundle)
	bundles.Post("/", middleware.Protected(), admin, controllers.CreateBundle)
	bundles.Patch("/:id", middleware.Protected(), admin, controllers.UpdateBundle)
	bundles.Delete("/:id", middleware.Protected(), admin, controllers.DeleteBundle)
}
