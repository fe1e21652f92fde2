package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/redis"
	"github.com/glowslot/salon-booking/utils"
)

type createBlockedSlotRequest struct {
	Date       string `json:"date"`       // "YYYY-MM-DD"
	StartTime  string `json:"start_time"` // "HH:MM"
	EndTime    string `json:"end_time"`   // "HH:MM"
	Reason     string `json:"reason"`
	EmployeeID *uint  `json:"employee_id"`
}

// GetAllBlockedSlots lists blocked slots, optionally for one date.
func GetAllBlockedSlots(c *fiber.Ctx) error {
	query := db.DB.Preload("Employee")
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			errs := utils.NewValidationErrors()
			errs.Add("date", err.Error())
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}
		query = query.Where("block_date = ?", utils.DateOnly(date))
	}

	var blocked []models.BlockedTimeSlot
	if err := query.Order("block_date asc, start_time asc").Find(&blocked).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch blocked slots",
			Error:   err.Error(),
		})
	}
	return c.JSON(blocked)
}

// CreateBlockedSlot blocks a time window for one employee or the whole
// salon.
func CreateBlockedSlot(c *fiber.Ctx) error {
	var req createBlockedSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	errs := utils.NewValidationErrors()
	if req.Date == "" {
		errs.Add("date", "date is required")
	}
	if req.StartTime == "" {
		errs.Add("start_time", "start_time is required")
	}
	if req.EndTime == "" {
		errs.Add("end_time", "end_time is required")
	}
	if req.StartTime != "" && req.EndTime != "" && req.StartTime >= req.EndTime {
		errs.Add("end_time", "end_time must be after start_time")
	}

	date, err := utils.ParseDate(req.Date)
	if req.Date != "" && err != nil {
		errs.Add("date", err.Error())
	}
	if errs.HasErrors() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	blocked := models.BlockedTimeSlot{
		BlockDate:  utils.DateOnly(date),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Reason:     req.Reason,
		EmployeeID: req.EmployeeID,
	}

	if err := db.DB.Create(&blocked).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create blocked slot",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAvailability(req.Date)

	return c.Status(fiber.StatusCreated).JSON(blocked)
}

// DeleteBlockedSlot removes a block, freeing the window again.
func DeleteBlockedSlot(c *fiber.Ctx) error {
	id := c.Params("id")
	var blocked models.BlockedTimeSlot
	if err := db.DB.First(&blocked, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Blocked slot not found",
		})
	}
	if err := db.DB.Delete(&blocked).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete blocked slot",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAvailability(blocked.BlockDate.Format(utils.DateLayout))

	return c.SendStatus(fiber.StatusNoContent)
}
