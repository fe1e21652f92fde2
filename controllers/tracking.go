package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/utils"
)

// TrackEvent records a page view or interaction from the public site.
func TrackEvent(c *fiber.Ctx) error {
	event := new(models.TrackingEvent)
	if err := c.BodyParser(event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if event.EventType == "" {
		errs := utils.NewValidationErrors()
		errs.Add("event_type", "event_type is required")
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	if err := db.DB.Create(event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to record event",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetTrackingEvents lists recent events for the admin dashboard.
func GetTrackingEvents(c *fiber.Ctx) error {
	query := db.DB.Model(&models.TrackingEvent{})
	if eventType := c.Query("event_type"); eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var events []models.TrackingEvent
	if err := query.Order("created_at desc").Limit(500).Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch events",
			Error:   err.Error(),
		})
	}
	return c.JSON(events)
}
