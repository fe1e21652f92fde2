package controllers

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/mailer"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/redis"
	"github.com/glowslot/salon-booking/scheduling"
	"github.com/glowslot/salon-booking/utils"
)

type CreateBookingRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ServiceID  *uint  `json:"service_id"`
	BundleID   *uint  `json:"bundle_id"`
	EmployeeID *uint  `json:"employee_id"`
	Date       string `json:"date"`       // "YYYY-MM-DD"
	StartTime  string `json:"start_time"` // "HH:MM"
	Notes      string `json:"notes"`
}

var errSlotTaken = errors.New("time slot not available")

// CreateBooking handles the public booking flow: validate, resolve the
// target, enforce advance limits and business hours, then re-check the
// slot under a row lock and insert in one transaction.
func CreateBooking(c *fiber.Ctx) error {
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

	// Resolve the booking target and its duration
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

	// Too far out or too soon is a conflict, not a validation failure
	maxDays := models.GetSettingInt(db.DB, models.SettingMaxAdvanceBookingDays, models.DefaultMaxAdvanceBookingDays)
	minHours := models.GetSettingInt(db.DB, models.SettingMinAdvanceBookingHours, models.DefaultMinAdvanceBookingHours)
	if msg := advanceWindowError(time.Now(), date, start, maxDays, minHours); msg != "" {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: msg,
		})
	}

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

	status := models.StatusPending
	if !models.GetSettingBool(db.DB, models.SettingRequireConfirmation, true) {
		status = models.StatusConfirmed
	}

	booking := models.Booking{
		ServiceID:   req.ServiceID,
		BundleID:    req.BundleID,
		EmployeeID:  req.EmployeeID,
		BookingDate: utils.DateOnly(date),
		StartTime:   start,
		EndTime:     end,
		Status:      status,
		Notes:       req.Notes,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		// Re-check under a row lock to close the check-then-insert race
		if err := assertSlotFree(tx, date, start, end, req.EmployeeID); err != nil {
			return err
		}

		customer, err := upsertCustomer(tx, req.Name, req.Email, req.Phone)
		if err != nil {
			return err
		}
		booking.CustomerID = customer.ID

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		// Attach loaded rows only for the email template; associations
		// stay out of the insert above.
		booking.Customer = *customer
		if req.ServiceID != nil {
			booking.Service = &service
		} else {
			booking.Bundle = &bundle
		}

		subject, body := mailer.ConfirmationEmail(&booking, os.Getenv("APP_BASE_URL"))
		return mailer.Enqueue(tx, models.EmailConfirmation, &booking.ID, customer.Email, subject, body)
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

// assertSlotFree locks conflicting booking rows and fails when any
// active booking or blocked slot overlaps [start, end). When an
// employee is requested only that employee's rows and salon-wide rows
// count; otherwise everything does.
func assertSlotFree(tx *gorm.DB, date, start, end time.Time, employeeID *uint) error {
	day := utils.DateOnly(date)

	var conflicting []models.Booking
	query := `
		SELECT id FROM bookings
		WHERE booking_date = ?
		  AND status <> 'cancelled'
		  AND deleted_at IS NULL
		  AND start_time < ? AND end_time > ?
	`
	args := []interface{}{day, end, start}
	if employeeID != nil {
		query += ` AND (employee_id IS NULL OR employee_id = ?)`
		args = append(args, *employeeID)
	}
	query += ` FOR UPDATE`

	if err := tx.Raw(query, args...).Scan(&conflicting).Error; err != nil {
		return err
	}
	if len(conflicting) > 0 {
		return errSlotTaken
	}

	var blocked []models.BlockedTimeSlot
	if err := tx.Where("block_date = ?", day).Find(&blocked).Error; err != nil {
		return err
	}

	scope := scheduling.ScopeGlobal()
	if employeeID != nil {
		scope = scheduling.ScopeEmployee(*employeeID)
	}
	rows := make([]scheduling.ScopedInterval, 0, len(blocked))
	for _, bl := range blocked {
		blStart, err1 := utils.ParseHM(date, bl.StartTime)
		blEnd, err2 := utils.ParseHM(date, bl.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		rows = append(rows, scheduling.ScopedInterval{
			Interval:   scheduling.Interval{Start: blStart, End: blEnd},
			EmployeeID: bl.EmployeeID,
		})
	}
	if !scheduling.IsSlotFree(start, end, scheduling.FilterConflicts(rows, scope)) {
		return errSlotTaken
	}

	return nil
}

// ConfirmBooking confirms a booking through its emailed token link.
// Re-confirming is idempotent unless a link expiry window is set.
func ConfirmBooking(c *fiber.Ctx) error {
	token := c.Params("token")

	var booking models.Booking
	if err := db.DB.Preload("Customer").Preload("Service").Preload("Bundle").
		Where("confirmation_token = ?", token).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}

	expiryHours := models.GetSettingInt(db.DB, models.SettingConfirmationExpiryHours, models.DefaultConfirmationExpiryHours)
	if expiryHours > 0 {
		expired := time.Since(booking.CreatedAt) > time.Duration(expiryHours)*time.Hour ||
			booking.BookingDate.Before(utils.DateOnly(time.Now()))
		if expired {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Confirmation link has expired",
			})
		}
	}

	if booking.Status == models.StatusConfirmed {
		// Idempotent re-confirm
		return c.JSON(booking)
	}

	if err := booking.UpdateStatus(db.DB, models.StatusConfirmed); err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Booking cannot be confirmed",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to confirm booking",
			Error:   err.Error(),
		})
	}

	return c.JSON(booking)
}

// CancelBooking cancels a booking and queues the cancellation notice.
// Cancelled and completed bookings reject further cancellation.
func CancelBooking(c *fiber.Ctx) error {
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.Preload("Customer").Preload("Service").Preload("Bundle").
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := booking.UpdateStatus(tx, models.StatusCancelled); err != nil {
			return err
		}
		subject, body := mailer.CancellationEmail(&booking)
		return mailer.Enqueue(tx, models.EmailCancellation, &booking.ID, booking.Customer.Email, subject, body)
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Booking cannot be cancelled",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to cancel booking",
			Error:   err.Error(),
		})
	}

	redis.InvalidateAvailability(booking.BookingDate.Format(utils.DateLayout))

	return c.JSON(booking)
}
