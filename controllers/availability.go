package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/redis"
	"github.com/glowslot/salon-booking/scheduling"
	"github.com/glowslot/salon-booking/utils"
)

type availabilityResponse struct {
	Date      string                `json:"date"`
	ServiceID uint                  `json:"service_id"`
	Slots     []scheduling.SlotInfo `json:"slots"`
}

// GetAvailability returns every candidate slot for a service on a
// date, each flagged available or not. Closed days return an empty
// slot list, not an error.
func GetAvailability(c *fiber.Ctx) error {
	serviceID := uint(c.QueryInt("service_id"))
	dateStr := c.Query("date")

	errs := utils.NewValidationErrors()
	if serviceID == 0 {
		errs.Add("service_id", "service_id is required")
	}
	if dateStr == "" {
		errs.Add("date", "date is required")
	}
	var date time.Time
	if dateStr != "" {
		var err error
		date, err = utils.ParseDate(dateStr)
		if err != nil {
			errs.Add("date", err.Error())
		}
	}
	if errs.HasErrors() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	var employeeID *uint
	if c.Query("employee_id") != "" {
		id := uint(c.QueryInt("employee_id"))
		employeeID = &id
	}

	// Validate the service before touching the cache; a deactivated
	// service must 404 immediately, not serve a stale cached 200.
	var service models.Service
	if err := db.DB.First(&service, serviceID).Error; err != nil || !service.IsActive {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
		})
	}

	cacheKey := redis.AvailabilityKey(serviceID, dateStr, employeeID)
	if cached := redis.GetAvailability(cacheKey); cached != "" {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	hours, err := businessHoursFor(db.DB, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load business hours",
			Error:   err.Error(),
		})
	}

	resp := availabilityResponse{
		Date:      dateStr,
		ServiceID: serviceID,
		Slots:     []scheduling.SlotInfo{},
	}

	interval := models.GetSettingInt(db.DB, models.SettingBookingIntervalMinutes, models.DefaultBookingIntervalMinutes)
	slots := slotsForDay(hours, date, service.Duration(), time.Duration(interval)*time.Minute)
	if len(slots) == 0 {
		return c.JSON(resp)
	}

	conflicts, err := loadDayConflicts(db.DB, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load bookings",
			Error:   err.Error(),
		})
	}

	scope := scheduling.ScopeGlobal()
	if employeeID != nil {
		scope = scheduling.ScopeEmployee(*employeeID)
	}
	busy := scheduling.FilterConflicts(conflicts, scope)
	slots = scheduling.MarkAvailability(slots, busy)
	resp.Slots = scheduling.ToSlotInfo(slots)

	if payload, err := json.Marshal(resp); err == nil {
		redis.SetAvailability(cacheKey, string(payload))
	}

	return c.JSON(resp)
}
