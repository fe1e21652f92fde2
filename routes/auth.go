package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/controllers"
	"github.com/glowslot/salon-booking/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.GetProfile)

	// First-run admin creation, guarded by the shared secret header
	auth.Post("/bootstrap", middleware.RequireBootstrapSecret(), controllers.BootstrapAdmin)
}
