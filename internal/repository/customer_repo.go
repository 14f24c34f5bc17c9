package repository

import (
	"errors"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	FindByPhone(phone string) (*model.Customer, error)
	FindByID(id uuid.UUID) (*model.Customer, error)
	FindAll() ([]model.Customer, error)
	GetOrCreate(tx *gorm.DB, phone string) (*model.Customer, error)
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) FindByPhone(phone string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.Where("phone_number = ?", phone).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Order("phone_number ASC").Find(&customers).Error
	return customers, err
}

// GetOrCreate resolves a customer by phone inside the given transaction,
// creating the record on first rental. Never fails on an existing phone.
func (r *customerRepo) GetOrCreate(tx *gorm.DB, phone string) (*model.Customer, error) {
	var customer model.Customer
	err := tx.Where("phone_number = ?", phone).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer = model.Customer{PhoneNumber: phone}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
