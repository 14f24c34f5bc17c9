package handler

import (
	"strconv"

	"go-pos-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AuditLogHandler struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditLogHandler(auditRepo repository.AuditLogRepository) *AuditLogHandler {
	return &AuditLogHandler{auditRepo: auditRepo}
}

// GetAuditLogs handles GET /audit-logs?limit=n (Admin only)
func (h *AuditLogHandler) GetAuditLogs(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}

	entries, err := h.auditRepo.FindRecent(limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch audit logs"})
	}

	return c.JSON(entries)
}
