package controllers

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/scheduling"
	"github.com/glowslot/salon-booking/utils"
)

// loadDayConflicts collects every busy interval for a date: active
// bookings plus blocked slots, each tagged with its employee scope.
// One bulk load per request; slot marking happens in memory.
func loadDayConflicts(tx *gorm.DB, date time.Time) ([]scheduling.ScopedInterval, error) {
	var bookings []models.Booking
	if err := tx.Where("booking_date = ? AND status <> ?", utils.DateOnly(date), models.StatusCancelled).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	var blocked []models.BlockedTimeSlot
	if err := tx.Where("block_date = ?", utils.DateOnly(date)).
		Find(&blocked).Error; err != nil {
		return nil, err
	}

	rows := make([]scheduling.ScopedInterval, 0, len(bookings)+len(blocked))
	for _, b := range bookings {
		rows = append(rows, scheduling.ScopedInterval{
			Interval:   scheduling.Interval{Start: b.StartTime, End: b.EndTime},
			EmployeeID: b.EmployeeID,
		})
	}
	for _, bl := range blocked {
		start, err := utils.ParseHM(date, bl.StartTime)
		if err != nil {
			continue
		}
		end, err := utils.ParseHM(date, bl.EndTime)
		if err != nil {
			continue
		}
		rows = append(rows, scheduling.ScopedInterval{
			Interval:   scheduling.Interval{Start: start, End: end},
			EmployeeID: bl.EmployeeID,
		})
	}

	return rows, nil
}

// slotsForDay produces the candidate slots for one day's schedule.
// Closed, missing, or misconfigured hours yield no slots.
func slotsForDay(hours *models.BusinessHours, date time.Time, duration, interval time.Duration) []scheduling.Slot {
	if hours == nil || !hours.IsOpen {
		return nil
	}

	open, err := utils.ParseHM(date, hours.OpenTime)
	if err != nil {
		return nil
	}
	close, err := utils.ParseHM(date, hours.CloseTime)
	if err != nil {
		return nil
	}

	var breakStart, breakEnd *time.Time
	if hours.BreakStart != nil && hours.BreakEnd != nil {
		bs, err1 := utils.ParseHM(date, *hours.BreakStart)
		be, err2 := utils.ParseHM(date, *hours.BreakEnd)
		if err1 == nil && err2 == nil {
			breakStart, breakEnd = &bs, &be
		}
	}

	return scheduling.GenerateSlots(open, close, duration, interval, breakStart, breakEnd)
}

// advanceWindowError enforces the how-far-ahead and how-soon booking
// limits. An empty string means the request is inside the window;
// otherwise the message maps to a 409, not a validation error.
func advanceWindowError(now, date, start time.Time, maxDays, minHours int) string {
	if utils.DateOnly(date).After(utils.DateOnly(now).AddDate(0, 0, maxDays)) {
		return fmt.Sprintf("Bookings can be made at most %d days in advance", maxDays)
	}
	if start.Before(now.Add(time.Duration(minHours) * time.Hour)) {
		return fmt.Sprintf("Bookings require at least %d hours notice", minHours)
	}
	return ""
}

// businessHoursFor returns the schedule row for the date's weekday,
// or nil when none exists.
func businessHoursFor(tx *gorm.DB, date time.Time) (*models.BusinessHours, error) {
	var hours models.BusinessHours
	err := tx.Where("day_of_week = ?", int(date.Weekday())).First(&hours).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hours, nil
}

// withinBusinessHours checks that [start, end) fits the day's opening
// window and does not cross the break. Half-open on both checks.
func withinBusinessHours(hours *models.BusinessHours, date, start, end time.Time) bool {
	if hours == nil || !hours.IsOpen {
		return false
	}

	open, err := utils.ParseHM(date, hours.OpenTime)
	if err != nil {
		return false
	}
	close, err := utils.ParseHM(date, hours.CloseTime)
	if err != nil {
		return false
	}

	if start.Before(open) || end.After(close) {
		return false
	}

	if hours.BreakStart != nil && hours.BreakEnd != nil {
		breakStart, err1 := utils.ParseHM(date, *hours.BreakStart)
		breakEnd, err2 := utils.ParseHM(date, *hours.BreakEnd)
		if err1 == nil && err2 == nil && scheduling.Overlaps(start, end, breakStart, breakEnd) {
			return false
		}
	}

	return true
}

// upsertCustomer finds a customer by email, then phone, creating one
// when neither matches. Bumps the booking counter either way.
func upsertCustomer(tx *gorm.DB, name, email, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := tx.Where("email = ?", email).First(&customer).Error
	if err == gorm.ErrRecordNotFound && phone != "" {
		err = tx.Where("phone = ?", phone).First(&customer).Error
	}
	if err == gorm.ErrRecordNotFound {
		customer = models.Customer{Name: name, Email: email, Phone: phone}
		if err := tx.Create(&customer).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := tx.Model(&customer).
		Update("total_bookings", gorm.Expr("total_bookings + 1")).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}
