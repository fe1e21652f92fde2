package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/mailer"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/redis"
	"github.com/glowslot/salon-booking/utils"
)

// ListBookings returns bookings for the admin surface, filterable by
// date and status.
func ListBookings(c *fiber.Ctx) error {
	query := db.DB.Preload("Service").Preload("Bundle").Preload("Customer").Preload("Employee")

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := utils.ParseDate(dateStr)
		if err != nil {
			errs := utils.NewValidationErrors()
			errs.Add("date", err.Error())
			return c.Status(fiber.StatusBadRequest).JSON(errs)
		}
		query = query.Where("booking_date = ?", utils.DateOnly(date))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("booking_date asc, start_time asc").Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	return c.JSON(bookings)
}

// GetBooking returns a booking by ID.
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Preload("Service").Preload("Bundle").Preload("Customer").Preload("Employee").
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}
	return c.JSON(booking)
}

// CreateManualBooking is the staff walk-in path: no advance-notice
// limits, bookings start confirmed, and conflicts are checked for the
// chosen employee plus salon-wide rows.
func CreateManualBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	errs := utils.NewValidationErrors()
	if req.Name == "" {
		errs.Add("name", "name is required")
	}
	if req.Email == "" {
		errs.Add("email", "email is required")
	}
	if req.Date == "" {
		errs.Add("date", "date is required")
	}
	if req.StartTime == "" {
		errs.Add("start_time", "start_time is required")
	}
	if (req.ServiceID == nil) == (req.BundleID == nil) {
		errs.Add("service_id", "exactly one of service_id or bundle_id is required")
	}

	var date, start time.Time
	if req.Date != "" {
		var err error
		date, err = utils.ParseDate(req.Date)
		if err != nil {
			errs.Add("date", err.Error())
		}
	}
	if req.StartTime != "" && !date.IsZero() {
		var err error
		start, err = utils.ParseHM(date, req.StartTime)
		if err != nil {
			errs.Add("start_time", err.Error())
		}
	}
	if errs.HasErrors() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	var duration time.Duration
	var service models.Service
	var bundle models.Bundle
	if req.ServiceID != nil {
		if err := db.DB.First(&service, *req.ServiceID).Error; err != nil || !service.IsActive {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
			})
		}
		duration = service.Duration()
	} else {
		if err := db.DB.First(&bundle, *req.BundleID).Error; err != nil || !bundle.IsActive {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Bundle not found",
			})
		}
		duration = bundle.Duration()
	}
	end := start.Add(duration)

	hours, err := businessHoursFor(db.DB, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load business hours",
			Error:   err.Error(),
		})
	}
	if !withinBusinessHours(hours, date, start, end) {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Requested time is outside business hours or during a break",
		})
	}

	booking := models.Booking{
		ServiceID:   req.ServiceID,
		BundleID:    req.BundleID,
		EmployeeID:  req.EmployeeID,
		BookingDate: utils.DateOnly(date),
		StartTime:   start,
		EndTime:     end,
		Status:      models.StatusConfirmed,
		Notes:       req.Notes,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, date, start, end, req.EmployeeID); err != nil {
			return err
		}

		customer, err := upsertCustomer(tx, req.Name, req.Email, req.Phone)
		if err != nil {
			return err
		}
		booking.CustomerID = customer.ID

		return tx.Create(&booking).Error
	})
	if err != nil {
		if errors.Is(err, errSlotTaken) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Time slot not available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAvailability(req.Date)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

type updateStatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateBookingStatus applies a staff status transition. Illegal
// transitions come back as 409, not 400.
func UpdateBookingStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Status == "" {
		errs := utils.NewValidationErrors()
		errs.Add("status", "status is required")
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	var booking models.Booking
	if err := db.DB.Preload("Customer").Preload("Service").Preload("Bundle").
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := booking.UpdateStatus(tx, req.Status); err != nil {
			return err
		}
		if req.Status == models.StatusCancelled {
			subject, body := mailer.CancellationEmail(&booking)
			return mailer.Enqueue(tx, models.EmailCancellation, &booking.ID, booking.Customer.Email, subject, body)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Invalid status transition",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update booking",
			Error:   err.Error(),
		})
	}

	if req.Status == models.StatusCancelled {
		redis.InvalidateAvailability(booking.BookingDate.Format(utils.DateLayout))
	}

	return c.JSON(booking)
}
