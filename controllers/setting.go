package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/utils"
)

type updateSettingRequest struct {
	Value string `json:"value"`
}

// GetAllSettings lists every configuration row.
func GetAllSettings(c *fiber.Ctx) error {
	var settings []models.Setting
	if err := db.DB.Order("key asc").Find(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch settings",
			Error:   err.Error(),
		})
	}
	return c.JSON(settings)
}

// UpdateSetting changes one setting value by key. Unknown keys are
// rejected so typos don't create dead rows.
func UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var req updateSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var setting models.Setting
	if err := db.DB.Where("key = ?", key).First(&setting).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Setting not found",
		})
	}

	setting.Value = req.Value
	if err := db.DB.Save(&setting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update setting",
			Error:   err.Error(),
		})
	}
	return c.JSON(setting)
}
