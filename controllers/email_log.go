package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/utils"
)

// GetEmailLogs lists send attempts, newest first, with optional status
// and type filters.
func GetEmailLogs(c *fiber.Ctx) error {
	query := db.DB.Model(&models.EmailLog{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if emailType := c.Query("type"); emailType != "" {
		query = query.Where("email_type = ?", emailType)
	}

	var logs []models.EmailLog
	if err := query.Order("created_at desc").Limit(200).Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch email logs",
			Error:   err.Error(),
		})
	}
	return c.JSON(logs)
}
