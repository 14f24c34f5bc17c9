package service

import (
	"errors"
	"fmt"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrLegacyIDExists = errors.New("legacy item id already exists")

type InventoryService interface {
	CreateItem(req *model.Item, employeeID string) error
	UpdateItem(id uuid.UUID, req *model.Item, employeeID string) (*model.Item, error)
	GetAllItems() ([]model.Item, error)
	GetItemByID(id uuid.UUID) (*model.Item, error)
	GetItemByLegacyID(legacyID int) (*model.Item, error)
	SearchItems(query string) ([]model.Item, error)
	CheckAvailability(id uuid.UUID, requested int) (bool, error)
}

type inventoryService struct {
	itemRepo repository.ItemRepository
	db       *gorm.DB
	wsHub    *ws.Hub
}

func NewInventoryService(itemRepo repository.ItemRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		itemRepo: itemRepo,
		db:       db,
		wsHub:    hub,
	}
}

func (s *inventoryService) CreateItem(req *model.Item, employeeID string) error {
	// 1. Validate struct
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if req.Price.IsNegative() {
		return errors.New("price must not be negative")
	}

	// 2. Check duplicate legacy id (business logic validation)
	existing, _ := s.itemRepo.FindByLegacyID(req.LegacyItemID)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrLegacyIDExists
	}

	// 3. Set audit fields
	req.CreatedBy = employeeID
	req.UpdatedBy = employeeID

	// 4. Save
	if err := s.itemRepo.Create(req); err != nil {
		return err
	}

	// 5. Broadcast
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stock_update",
		"action": "item_created",
		"item": map[string]interface{}{
			"id":             req.ID,
			"legacy_item_id": req.LegacyItemID,
			"name":           req.Name,
			"quantity":       req.Quantity,
			"price":          req.Price,
		},
	})

	return nil
}

func (s *inventoryService) UpdateItem(id uuid.UUID, req *model.Item, employeeID string) (*model.Item, error) {
	var updatedItem *model.Item

	// Transaction block so the quantity change is serialized against
	// concurrent sales touching the same row.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Item
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, "id = ?", id).Error; err != nil {
			return ErrItemNotFound
		}

		if req.Price.IsNegative() {
			return errors.New("price must not be negative")
		}
		if req.Quantity < 0 {
			return errors.New("quantity must not be negative")
		}

		oldQuantity := existing.Quantity

		existing.Name = req.Name
		existing.LegacyItemID = req.LegacyItemID
		existing.Price = req.Price
		existing.Quantity = req.Quantity
		existing.UpdatedBy = employeeID

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		updatedItem = &existing

		go s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":   "stock_update",
			"action": "item_updated",
			"item": map[string]interface{}{
				"id":           existing.ID,
				"name":         existing.Name,
				"old_quantity": oldQuantity,
				"new_quantity": existing.Quantity,
				"price":        existing.Price,
			},
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updatedItem, nil
}

func (s *inventoryService) GetAllItems() ([]model.Item, error) {
	return s.itemRepo.FindAll()
}

func (s *inventoryService) GetItemByID(id uuid.UUID) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *inventoryService) GetItemByLegacyID(legacyID int) (*model.Item, error) {
	item, err := s.itemRepo.FindByLegacyID(legacyID)
	if err != nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *inventoryService) SearchItems(query string) ([]model.Item, error) {
	return s.itemRepo.Search(query)
}

func (s *inventoryService) CheckAvailability(id uuid.UUID, requested int) (bool, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		return false, ErrItemNotFound
	}
	return item.IsAvailable(requested), nil
}
