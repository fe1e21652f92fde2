package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/redis"
	"github.com/glowslot/salon-booking/utils"
)

// GetAllBusinessHours returns the weekly schedule ordered by weekday.
func GetAllBusinessHours(c *fiber.Ctx) error {
	var hours []models.BusinessHours
	if err := db.DB.Order("day_of_week asc").Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch business hours",
			Error:   err.Error(),
		})
	}
	return c.JSON(hours)
}

// UpsertBusinessHours creates or replaces the schedule row for one
// weekday; at most one row per weekday ever exists.
func UpsertBusinessHours(c *fiber.Ctx) error {
	input := new(models.BusinessHours)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	errs := utils.NewValidationErrors()
	if input.DayOfWeek < models.Sunday || input.DayOfWeek > models.Saturday {
		errs.Add("day_of_week", "day_of_week must be 0-6")
	}
	if input.IsOpen {
		if _, err := utils.ParseHM(time.Now(), input.OpenTime); err != nil {
			errs.Add("open_time", err.Error())
		}
		if _, err := utils.ParseHM(time.Now(), input.CloseTime); err != nil {
			errs.Add("close_time", err.Error())
		}
		if input.OpenTime >= input.CloseTime {
			errs.Add("close_time", "close_time must be after open_time")
		}
		if (input.BreakStart == nil) != (input.BreakEnd == nil) {
			errs.Add("break_start", "break_start and break_end must be set together")
		}
		if input.BreakStart != nil && input.BreakEnd != nil && *input.BreakStart >= *input.BreakEnd {
			errs.Add("break_end", "break_end must be after break_start")
		}
	}
	if errs.HasErrors() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	var existing models.BusinessHours
	err := db.DB.Where("day_of_week = ?", input.DayOfWeek).First(&existing).Error
	if err == nil {
		existing.OpenTime = input.OpenTime
		existing.CloseTime = input.CloseTime
		existing.IsOpen = input.IsOpen
		existing.BreakStart = input.BreakStart
		existing.BreakEnd = input.BreakEnd
		if err := db.DB.Save(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update business hours",
				Error:   err.Error(),
			})
		}
		redis.InvalidateAllAvailability()
		return c.JSON(existing)
	}

	if err := db.DB.Create(input).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create business hours",
			Error:   err.Error(),
		})
	}
	redis.InvalidateAllAvailability()
	return c.Status(fiber.StatusCreated).JSON(input)
}
