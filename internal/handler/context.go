package handler

import (
	"errors"

	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper to read the acting employee id from the request context (set by the
// auth middleware).
func getEmployeeID(c *fiber.Ctx) string {
	employeeID := c.Locals("employee_id")
	if employeeID == nil {
		return "system" // Fallback (shouldn't happen in protected routes)
	}
	return employeeID.(string)
}

// Helper to parse UUID from string
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// statusForError maps service failures to HTTP status codes. Anything not in
// the taxonomy is a client error per the legacy API contract.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrTransactionNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}
