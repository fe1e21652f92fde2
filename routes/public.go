package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/controllers"
)

// SetupPublicRoutes configures newsletter signup and site tracking.
func SetupPublicRoutes(app *fiber.App) {
	newsletter := app.Group("/newsletter")
	newsletter.Post("/subscribe", controllers.Subscribe)
	newsletter.Get("/unsubscribe/:token", controllers.Unsubscribe)

	app.Post("/track", controllers.TrackEvent)
}
