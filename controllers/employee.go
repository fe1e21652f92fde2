package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/glowslot/salon-booking/db"
	"github.com/glowslot/salon-booking/models"
	"github.com/glowslot/salon-booking/utils"
)

// GetAllEmployees lists employees.
func GetAllEmployees(c *fiber.Ctx) error {
	var employees []models.Employee
	if err := db.DB.Find(&employees).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch employees",
			Error:   err.Error(),
		})
	}
	for i := range employees {
		employees[i].Password = ""
	}
	return c.JSON(employees)
}

// GetEmployee returns an employee by ID.
func GetEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	var employee models.Employee
	if err := db.DB.First(&employee, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
		})
	}
	employee.Password = ""
	return c.JSON(employee)
}

// CreateEmployee creates an employee account.
func CreateEmployee(c *fiber.Ctx) error {
	employee := new(models.Employee)
	if err := c.BodyParser(employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	errs := utils.NewValidationErrors()
	if employee.Name == "" {
		errs.Add("name", "name is required")
	}
	if employee.Email == "" {
		errs.Add("email", "email is required")
	}
	if employee.Password == "" {
		errs.Add("password", "password is required")
	}
	if employee.Role != "" && employee.Role != models.RoleAdmin && employee.Role != models.RoleStaff {
		errs.Add("role", "role must be admin or staff")
	}
	if errs.HasErrors() {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	var existing models.Employee
	if db.DB.Where("email = ?", employee.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Employee with this email already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(employee.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to hash password",
		})
	}
	employee.Password = string(hashedPassword)
	if employee.Role == "" {
		employee.Role = models.RoleStaff
	}

	if err := db.DB.Create(employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create employee",
			Error:   err.Error(),
		})
	}

	employee.Password = ""
	return c.Status(fiber.StatusCreated).JSON(employee)
}

// UpdateEmployee updates an employee, rehashing the password when a
// new one is supplied.
func UpdateEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	var employee models.Employee
	if err := db.DB.First(&employee, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
		})
	}

	previousHash := employee.Password
	employee.Password = ""
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if employee.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(employee.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to hash password",
			})
		}
		employee.Password = string(hashedPassword)
	} else {
		employee.Password = previousHash
	}

	if err := db.DB.Save(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update employee",
			Error:   err.Error(),
		})
	}

	employee.Password = ""
	return c.JSON(employee)
}

// DeleteEmployee soft-deletes an employee account.
func DeleteEmployee(c *fiber.Ctx) error {
	id := c.Params("id")
	var employee models.Employee
	if err := db.DB.First(&employee, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Employee not found",
		})
	}
	if err := db.DB.Delete(&employee).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete employee",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
