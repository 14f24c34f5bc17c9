package handler

import (
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TransactionHandler struct {
	engine  service.EngineService
	service service.TransactionQueryService
}

func NewTransactionHandler(engine service.EngineService, query service.TransactionQueryService) *TransactionHandler {
	return &TransactionHandler{engine: engine, service: query}
}

// CreateSaleRequest is the cart as submitted by the register UI
type CreateSaleRequest struct {
	Items      []service.CartLine `json:"items"`
	CouponCode string             `json:"coupon_code"`
}

type CreateRentalRequest struct {
	CustomerPhone string             `json:"customer_phone"`
	Items         []service.CartLine `json:"items"`
}

type ProcessReturnRequest struct {
	CustomerPhone string      `json:"customer_phone"`
	ItemIDs       []uuid.UUID `json:"item_ids"`
}

// CreateSale handles POST /transactions/sale
func (h *TransactionHandler) CreateSale(c *fiber.Ctx) error {
	var req CreateSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	employeeID, err := parseUUID(getEmployeeID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Employee not authenticated"})
	}

	transaction, err := h.engine.CreateSale(employeeID, req.Items, req.CouponCode)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(transaction)
}

// CreateRental handles POST /transactions/rental
func (h *TransactionHandler) CreateRental(c *fiber.Ctx) error {
	var req CreateRentalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	employeeID, err := parseUUID(getEmployeeID(c))
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Employee not authenticated"})
	}

	transaction, err := h.engine.CreateRental(employeeID, req.CustomerPhone, req.Items)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(transaction)
}

// ProcessReturn handles POST /transactions/return
func (h *TransactionHandler) ProcessReturn(c *fiber.Ctx) error {
	var req ProcessReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.CustomerPhone == "" || len(req.ItemIDs) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "customer_phone and item_ids are required"})
	}

	rentals, err := h.engine.ProcessReturn(req.CustomerPhone, req.ItemIDs)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rentals)
}

// GetTransactions handles GET /transactions (most recent 100)
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.GetRecentTransactions(100)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(transactions)
}

// GetTransaction handles GET /transactions/:id
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	txID, err := parseUUID(id)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	transaction, err := h.service.GetTransactionByID(txID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(transaction)
}
