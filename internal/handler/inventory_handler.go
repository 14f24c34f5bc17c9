package handler

import (
	"strconv"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateItem(&item, getEmployeeID(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": item})
}

func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var item model.Item
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	itemID, err := parseUUID(id)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	updated, err := h.service.UpdateItem(itemID, &item, getEmployeeID(c))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Item updated", "data": updated})
}

// GetItems lists all items; pass ?q= to search by name or legacy id
func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	query := c.Query("q")

	var (
		items []model.Item
		err   error
	)
	if query != "" {
		items, err = h.service.SearchItems(query)
	} else {
		items, err = h.service.GetAllItems()
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id := c.Params("id")

	// The register UI still sends legacy numeric ids; fall back to UUID.
	if legacyID, err := strconv.Atoi(id); err == nil {
		item, err := h.service.GetItemByLegacyID(legacyID)
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
		}
		return c.JSON(item)
	}

	itemID, err := parseUUID(id)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.service.GetItemByID(itemID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
	}
	return c.JSON(item)
}

// CheckAvailability handles GET /items/:id/availability?quantity=n
func (h *InventoryHandler) CheckAvailability(c *fiber.Ctx) error {
	itemID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	quantity, err := strconv.Atoi(c.Query("quantity", "1"))
	if err != nil || quantity <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid quantity"})
	}

	available, err := h.service.CheckAvailability(itemID, quantity)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Item not found"})
	}

	return c.JSON(fiber.Map{"available": available})
}
