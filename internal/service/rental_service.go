package service

import (
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"

	"go-pos-backend/pkg/validator"
)

// RentalService answers rental queries (history, outstanding, overdue).
// State transitions go through the EngineService only.
type RentalService interface {
	GetCustomerRentals(customerPhone string) ([]model.Rental, error)
	GetActiveRentals(customerPhone string) ([]model.Rental, error)
	GetOverdueRentals(customerPhone string) ([]model.Rental, error)
	HasOutstandingReturns(customerPhone string) (bool, error)
}

type rentalService struct {
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, customerRepo repository.CustomerRepository) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
	}
}

func (s *rentalService) GetCustomerRentals(customerPhone string) ([]model.Rental, error) {
	customer, err := s.customerRepo.FindByPhone(customerPhone)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return s.rentalRepo.FindByCustomer(customer.ID)
}

func (s *rentalService) GetActiveRentals(customerPhone string) ([]model.Rental, error) {
	customer, err := s.customerRepo.FindByPhone(customerPhone)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return s.rentalRepo.FindActiveByCustomer(customer.ID)
}

// GetOverdueRentals lists overdue rentals store-wide, or for one customer
// when a phone number is given.
func (s *rentalService) GetOverdueRentals(customerPhone string) ([]model.Rental, error) {
	if customerPhone == "" {
		return s.rentalRepo.FindOverdue(nil)
	}
	if !validator.IsValidPhone(customerPhone) {
		return nil, ErrInvalidPhone
	}
	customer, err := s.customerRepo.FindByPhone(customerPhone)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return s.rentalRepo.FindOverdue(&customer.ID)
}

func (s *rentalService) HasOutstandingReturns(customerPhone string) (bool, error) {
	rentals, err := s.GetActiveRentals(customerPhone)
	if err != nil {
		return false, err
	}
	return len(rentals) > 0, nil
}
