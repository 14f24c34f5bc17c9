package service

import (
	"testing"

	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryRentalRepo struct {
	fakeRentalRepo
	active []model.Rental
}

func (r *queryRentalRepo) FindActiveByCustomer(customerID uuid.UUID) ([]model.Rental, error) {
	var out []model.Rental
	for _, rental := range r.active {
		if rental.CustomerID == customerID && !rental.IsReturned {
			out = append(out, rental)
		}
	}
	return out, nil
}

func TestHasOutstandingReturns(t *testing.T) {
	customer := &model.Customer{PhoneNumber: "5551234567"}
	customer.ID = uuid.New()
	customerRepo := newFakeCustomerRepo(customer)

	rentalRepo := &queryRentalRepo{}
	svc := NewRentalService(rentalRepo, customerRepo)

	has, err := svc.HasOutstandingReturns("5551234567")
	require.NoError(t, err)
	assert.False(t, has)

	rentalRepo.active = append(rentalRepo.active, model.Rental{CustomerID: customer.ID})

	has, err = svc.HasOutstandingReturns("5551234567")
	require.NoError(t, err)
	assert.True(t, has)

	_, err = svc.HasOutstandingReturns("5559999999")
	require.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetOverdueRentalsPhoneValidation(t *testing.T) {
	svc := NewRentalService(&queryRentalRepo{}, newFakeCustomerRepo())

	// store-wide listing needs no phone
	_, err := svc.GetOverdueRentals("")
	require.NoError(t, err)

	_, err = svc.GetOverdueRentals("not-a-phone")
	require.ErrorIs(t, err, ErrInvalidPhone)

	_, err = svc.GetOverdueRentals("5559999999")
	require.ErrorIs(t, err, ErrCustomerNotFound)
}
