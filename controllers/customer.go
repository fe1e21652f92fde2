package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/utils"
)

// GetAllCustomers lists customers, searchable by name or email.
func GetAllCustomers(c *fiber.Ctx) error {
	query := db.DB.Model(&models.Customer{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}

	var customers []models.Customer
	if err := query.Order("name asc").Find(&customers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch customers",
			Error:   err.Error(),
		})
	}
	return c.JSON(customers)
}

// GetCustomer returns a customer with their booking history.
func GetCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	var customer models.Customer
	if err := db.DB.Preload("Bookings").Preload("Bookings.Service").
		First(&customer, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Customer not found",
		})
	}
	return c.JSON(customer)
}

// UpdateCustomer updates customer contact details and notes.
func UpdateCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Customer not found",
		})
	}
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&customer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update customer",
			Error:   err.Error(),
		})
	}
	return c.JSON(customer)
}

// DeleteCustomer soft-deletes a customer.
func DeleteCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	var customer models.Customer
	if err := db.DB.First(&customer, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Customer not found",
		})
	}
	if err := db.DB.Delete(&customer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete customer",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
