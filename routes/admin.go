package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/controllers"
	"github.com/glowslot/salon-booking/middleware"
	"github.com/glowslot/salon-booking/models"
)

// SetupAdminRoutes configures the staff dashboard. Every route requires
// a valid token; employee, settings and newsletter management
// additionally require the admin role.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.Protected())
	admin := middleware.RequireRole(models.RoleAdmin)

	// Bookings (any staff member)
	adminGroup.Get("/bookings", controllers.ListBookings)
	adminGroup.Get("/bookings/:id", controllers.GetBooking)
	adminGroup.Post("/bookings", controllers.CreateManualBooking)
	adminGroup.Patch("/bookings/:id/status", controllers.UpdateBookingStatus)

	// Customers (any staff member)
	adminGroup.Get("/customers", controllers.GetAllCustomers)
	adminGroup.Get("/customers/:id", controllers.GetCustomer)
	adminGroup.Patch("/customers/:id", controllers.UpdateCustomer)
	adminGroup.Delete("/customers/:id", admin, controllers.DeleteCustomer)

	// Schedule management
	adminGroup.Get("/business-hours", controllers.GetAllBusinessHours)
	adminGroup.Put("/business-hours", admin, controllers.UpsertBusinessHours)
	adminGroup.Get("/blocked-slots", controllers.GetAllBlockedSlots)
	adminGroup.Post("/blocked-slots", controllers.CreateBlockedSlot)
	adminGroup.Delete("/blocked-slots/:id", controllers.DeleteBlockedSlot)

	// Employees (admin only)
	adminGroup.Get("/employees", admin, controllers.GetAllEmployees)
	adminGroup.Get("/employees/:id", admin, controllers.GetEmployee)
	adminGroup.Post("/employees", admin, controllers.CreateEmployee)
	adminGroup.Patch("/employees/:id", admin, controllers.UpdateEmployee)
	adminGroup.Delete("/employees/:id", admin, controllers.DeleteEmployee)

	// Configuration (admin only)
	adminGroup.Get("/settings", admin, controllers.GetAllSettings)
	adminGroup.Put("/settings/:key", admin, controllers.UpdateSetting)

	// Email audit trail
	adminGroup.Get("/email-logs", admin, controllers.GetEmailLogs)

	// Newsletter campaigns (admin only)
	adminGroup.Post("/newsletter/send", admin, controllers.SendNewsletter)

	// Site analytics
	adminGroup.Get("/tracking-events", admin, controllers.GetTrackingEvents)
}
