package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/controllers"
)

// SetupBookingRoutes configures the public booking flow
func SetupBookingRoutes(app *fiber.App) {
	app.Get("/availability", controllers.GetAvailability)

	booking := app.Group("/bookings")
	booking.Post("/", controllers.CreateBooking)
	booking.Get("/confirm/:token", controllers.ConfirmBooking)
	booking.Post("/:id/cancel", controllers.CancelBooking)
}
