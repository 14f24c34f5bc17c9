package middleware

import (
	"strings"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the JWT token, checks the employee still exists and
// is active, and sets the acting employee in the request context. Handlers
// thread that identity into every engine call explicitly; the engine itself
// never reads session state.
func RequireAuth(employeeRepo repository.EmployeeRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		tokenString := parts[1]

		// Validate token
		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// Check employee against DB
		employee, err := employeeRepo.FindByID(claims.EmployeeID)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Employee not found"})
		}
		if !employee.IsActive {
			return c.Status(401).JSON(fiber.Map{"error": "Employee account is inactive"})
		}

		// Set employee info in context for downstream handlers
		c.Locals("employee_id", claims.EmployeeID.String())
		c.Locals("employee_name", claims.Name)
		c.Locals("employee_position", claims.Position)

		return c.Next()
	}
}

// RequireAdmin gates routes to employees with the Admin position
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		position, ok := c.Locals("employee_position").(string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No position found"})
		}

		if position != string(model.PositionAdmin) {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: requires Admin position"})
		}

		return c.Next()
	}
}
