package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/utils"
)

// GetAllBundles lists active bundles with their services.
func GetAllBundles(c *fiber.Ctx) error {
	query := db.DB.Preload("Services")
	if c.Query("all") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var bundles []models.Bundle
	if err := query.Find(&bundles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bundles",
			Error:   err.Error(),
		})
	}
	return c.JSON(bundles)
}

// GetBundle returns a bundle by ID.
func GetBundle(c *fiber.Ctx) error {
	id := c.Params("id")
	var bundle models.Bundle
	if err := db.DB.Preload("Services").First(&bundle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Bundle not found",
		})
	}
	return c.JSON(bundle)
}

// CreateBundle creates a bundle.
func CreateBundle(c *fiber.Ctx) error {
	bundle := new(models.Bundle)
	if err := c.BodyParser(bundle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	errs := utils.NewValidationErrors()
	if bundle.Name == "" {
		errs.Add("name", "name is required")
	}
	if bundle.DurationMinutes <= 0 {
		errs.Add("duration_minutes", "duration_minutes must be positive")
	}
	if errs.HasErrors() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	if err := db.DB.Create(bundle).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create bundle",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(bundle)
}

// UpdateBundle updates a bundle.
func UpdateBundle(c *fiber.Ctx) error {
	id := c.Params("id")
	var bundle models.Bundle
	if err := db.DB.First(&bundle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Bundle not found",
		})
	}
	if err := c.BodyParser(&bundle); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&bundle).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update bundle",
			Error:   err.Error(),
		})
	}
	return c.JSON(bundle)
}

// DeleteBundle soft-deletes a bundle.
func DeleteBundle(c *fiber.Ctx) error {
	id := c.Params("id")
	var bundle models.Bundle
	if err := db.DB.First(&bundle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Bundle not found",
		})
	}
	if err := db.DB.Delete(&bundle).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete bundle",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
