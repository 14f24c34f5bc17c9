package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RentalPeriodDays is the default rental period when no due date is given.
const RentalPeriodDays = 7

// Rental tracks ONE physical unit out on loan. Renting 3 units of an item in
// a single transaction creates 3 Rental rows, so returns resolve at unit
// granularity. TransactionID is nullable because rentals migrated from the
// legacy system have no parent transaction.
type Rental struct {
	BaseModel
	TransactionID *uuid.UUID `gorm:"type:uuid;index" json:"transaction_id,omitempty"`
	ItemID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"item_id" validate:"uuid_required"`
	Item          *Item      `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT" json:"item,omitempty" validate:"-"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id" validate:"uuid_required"`
	Customer      *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty" validate:"-"`
	RentalDate    time.Time  `gorm:"type:date;not null" json:"rental_date"`
	DueDate       time.Time  `gorm:"type:date;index" json:"due_date"`
	ReturnDate    *time.Time `gorm:"type:date" json:"return_date,omitempty"`
	IsReturned    bool       `gorm:"default:false;index" json:"is_returned"`
	DaysOverdue   *int       `json:"days_overdue,omitempty"` // derived, recomputed on every save
}

// BeforeSave fills the default due date and recomputes days overdue.
// Invariant: is_returned=false <=> return_date=null.
func (r *Rental) BeforeSave(tx *gorm.DB) error {
	if r.DueDate.IsZero() {
		r.DueDate = r.RentalDate.AddDate(0, 0, RentalPeriodDays)
	}

	today := time.Now()
	switch {
	case !r.IsReturned && dateOnly(r.DueDate).Before(dateOnly(today)):
		days := daysBetween(r.DueDate, today)
		r.DaysOverdue = &days
	case r.IsReturned && r.ReturnDate != nil && dateOnly(*r.ReturnDate).After(dateOnly(r.DueDate)):
		days := daysBetween(r.DueDate, *r.ReturnDate)
		r.DaysOverdue = &days
	default:
		r.DaysOverdue = nil
	}
	return nil
}

// MarkAsReturned transitions the rental to returned. DaysOverdue is
// recomputed from the return date on the next save.
func (r *Rental) MarkAsReturned(returnDate time.Time) {
	r.IsReturned = true
	r.ReturnDate = &returnDate
}

// IsOverdue checks whether the rental is still out past its due date.
func (r *Rental) IsOverdue() bool {
	return !r.IsReturned && dateOnly(r.DueDate).Before(dateOnly(time.Now()))
}
