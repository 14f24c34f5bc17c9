package handler

import (
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RentalHandler struct {
	service service.RentalService
}

func NewRentalHandler(s service.RentalService) *RentalHandler {
	return &RentalHandler{service: s}
}

// GetOutstandingRentals handles GET /transactions/outstanding-rentals?customer_phone=
func (h *RentalHandler) GetOutstandingRentals(c *fiber.Ctx) error {
	customerPhone := c.Query("customer_phone")
	if customerPhone == "" {
		return c.Status(400).JSON(fiber.Map{"error": "customer_phone parameter is required"})
	}

	rentals, err := h.service.GetActiveRentals(customerPhone)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rentals)
}

// GetCustomerRentals handles GET /rentals?customer_phone= (full history)
func (h *RentalHandler) GetCustomerRentals(c *fiber.Ctx) error {
	customerPhone := c.Query("customer_phone")
	if customerPhone == "" {
		return c.Status(400).JSON(fiber.Map{"error": "customer_phone parameter is required"})
	}

	rentals, err := h.service.GetCustomerRentals(customerPhone)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rentals)
}

// GetOverdueRentals handles GET /rentals/overdue; customer_phone is optional
func (h *RentalHandler) GetOverdueRentals(c *fiber.Ctx) error {
	rentals, err := h.service.GetOverdueRentals(c.Query("customer_phone"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rentals)
}
