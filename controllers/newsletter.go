package controllers

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/mailer"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/utils"
)

type subscribeRequest struct {
	Email string `json:"email"`
}

type sendNewsletterRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// Subscribe adds an email to the newsletter list. Re-subscribing a
// previously unsubscribed address reactivates it.
func Subscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		errs := utils.NewValidationErrors()
		errs.Add("email", "a valid email is required")
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	var subscriber models.Subscriber
	err := db.DB.Where("email = ?", email).First(&subscriber).Error
	if err == nil {
		if !subscriber.IsActive {
			subscriber.IsActive = true
			if err := db.DB.Save(&subscriber).Error; err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
					Message: "Failed to reactivate subscription",
					Error:   err.Error(),
				})
			}
		}
		return c.JSON(fiber.Map{"message": "Subscribed"})
	}

	subscriber = models.Subscriber{Email: email, IsActive: true}
	if err := db.DB.Create(&subscriber).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to subscribe",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Subscribed"})
}

// Unsubscribe deactivates a subscription by its token. The link lives
// in every newsletter footer, so this endpoint is public.
func Unsubscribe(c *fiber.Ctx) error {
	token := c.Params("token")

	var subscriber models.Subscriber
	if err := db.DB.Where("unsubscribe_token = ?", token).First(&subscriber).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Subscription not found",
		})
	}

	if subscriber.IsActive {
		subscriber.IsActive = false
		if err := db.DB.Save(&subscriber).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to unsubscribe",
				Error:   err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{"message": "Unsubscribed"})
}

// SendNewsletter queues one outbox email per active subscriber. The
// cron worker does the actual sending.
func SendNewsletter(c *fiber.Ctx) error {
	var req sendNewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	errs := utils.NewValidationErrors()
	if req.Subject == "" {
		errs.Add("subject", "subject is required")
	}
	if req.Content == "" {
		errs.Add("content", "content is required")
	}
	if errs.HasErrors() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	var subscribers []models.Subscriber
	if err := db.DB.Where("is_active = ?", true).Find(&subscribers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to load subscribers",
			Error:   err.Error(),
		})
	}

	baseURL := os.Getenv("APP_BASE_URL")
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		for _, sub := range subscribers {
			subject, body := mailer.NewsletterEmail(req.Subject, req.Content, baseURL, sub.UnsubscribeToken)
			if err := mailer.Enqueue(tx, models.EmailNewsletter, nil, sub.Email, subject, body); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to queue newsletter",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"queued": len(subscribers)})
}
