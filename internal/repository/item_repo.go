package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	Create(item *model.Item) error
	FindAll() ([]model.Item, error)
	FindByID(id uuid.UUID) (*model.Item, error)
	FindByLegacyID(legacyID int) (*model.Item, error)
	Search(query string) ([]model.Item, error)
	Update(item *model.Item) error
	FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Item, error)
	ReduceQuantity(tx *gorm.DB, id uuid.UUID, amount int, updatedBy string) (bool, error)
	IncreaseQuantity(tx *gorm.DB, id uuid.UUID, amount int, updatedBy string) error
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Create(item *model.Item) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindAll() ([]model.Item, error) {
	var items []model.Item
	err := r.db.Order("legacy_item_id ASC").Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "id = ?", id).Error
	return &item, err
}

func (r *itemRepo) FindByLegacyID(legacyID int) (*model.Item, error) {
	var item model.Item
	err := r.db.First(&item, "legacy_item_id = ?", legacyID).Error
	return &item, err
}

func (r *itemRepo) Search(query string) ([]model.Item, error) {
	var items []model.Item
	err := r.db.
		Where("name ILIKE ? OR CAST(legacy_item_id AS TEXT) LIKE ?", "%"+query+"%", "%"+query+"%").
		Order("legacy_item_id ASC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) Update(item *model.Item) error {
	return r.db.Save(item).Error
}

// FindForUpdate locks the item row (FOR UPDATE) inside the given transaction
// so concurrent sales against the same item serialize on it.
func (r *itemRepo) FindForUpdate(tx *gorm.DB, id uuid.UUID) (*model.Item, error) {
	var item model.Item
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, "id = ?", id).Error
	return &item, err
}

// ReduceQuantity decrements stock only while it stays non-negative. The guard
// lives in the WHERE clause; callers check the returned bool and abort their
// unit of work when it is false.
func (r *itemRepo) ReduceQuantity(tx *gorm.DB, id uuid.UUID, amount int, updatedBy string) (bool, error) {
	res := tx.Model(&model.Item{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", amount),
			"updated_by": updatedBy,
		})
	return res.RowsAffected > 0, res.Error
}

// IncreaseQuantity increments stock unconditionally.
func (r *itemRepo) IncreaseQuantity(tx *gorm.DB, id uuid.UUID, amount int, updatedBy string) error {
	return tx.Model(&model.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", amount),
			"updated_by": updatedBy,
		}).Error
}
