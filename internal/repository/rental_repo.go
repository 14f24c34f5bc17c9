package repository

import (
	"time"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RentalRepository interface {
	CreateBatch(tx *gorm.DB, rentals []model.Rental) error
	Save(tx *gorm.DB, rental *model.Rental) error
	FindActiveForReturn(tx *gorm.DB, customerID uuid.UUID, itemIDs []uuid.UUID) ([]model.Rental, error)
	FindByCustomer(customerID uuid.UUID) ([]model.Rental, error)
	FindActiveByCustomer(customerID uuid.UUID) ([]model.Rental, error)
	FindOverdue(customerID *uuid.UUID) ([]model.Rental, error)
}

type rentalRepo struct {
	db *gorm.DB
}

func NewRentalRepo(db *gorm.DB) RentalRepository {
	return &rentalRepo{db}
}

func (r *rentalRepo) CreateBatch(tx *gorm.DB, rentals []model.Rental) error {
	return tx.Create(&rentals).Error
}

func (r *rentalRepo) Save(tx *gorm.DB, rental *model.Rental) error {
	return tx.Save(rental).Error
}

// FindActiveForReturn locks every active rental of the customer matching the
// given item ids. All matches are returned; process_return transitions the
// full set, not a capped count.
func (r *rentalRepo) FindActiveForReturn(tx *gorm.DB, customerID uuid.UUID, itemIDs []uuid.UUID) ([]model.Rental, error) {
	var rentals []model.Rental
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ? AND item_id IN ? AND is_returned = ?", customerID, itemIDs, false).
		Find(&rentals).Error
	return rentals, err
}

func (r *rentalRepo) FindByCustomer(customerID uuid.UUID) ([]model.Rental, error) {
	var rentals []model.Rental
	err := r.db.Preload("Item").
		Where("customer_id = ?", customerID).
		Order("rental_date DESC").
		Find(&rentals).Error
	return rentals, err
}

func (r *rentalRepo) FindActiveByCustomer(customerID uuid.UUID) ([]model.Rental, error) {
	var rentals []model.Rental
	err := r.db.Preload("Item").
		Where("customer_id = ? AND is_returned = ?", customerID, false).
		Order("due_date ASC").
		Find(&rentals).Error
	return rentals, err
}

// FindOverdue lists active rentals past their due date, optionally scoped to
// one customer.
func (r *rentalRepo) FindOverdue(customerID *uuid.UUID) ([]model.Rental, error) {
	var rentals []model.Rental
	q := r.db.Preload("Item").Preload("Customer").
		Where("is_returned = ? AND due_date < ?", false, time.Now()).
		Order("due_date ASC")
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}
	err := q.Find(&rentals).Error
	return rentals, err
}
