package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TxSale   TransactionType = "Sale"
	TxRental TransactionType = "Rental"
	TxReturn TransactionType = "Return"
)

// Transaction is the committed record of a sale or rental. TotalAmount is
// tax-inclusive; per-line amounts live on the TransactionItem children and
// are pre-discount snapshots.
type Transaction struct {
	BaseModel
	Type            TransactionType `gorm:"column:transaction_type;type:varchar(10);not null;index" json:"transaction_type" validate:"required,oneof=Sale Rental Return"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"employee_id" validate:"uuid_required"`
	Employee        *Employee       `gorm:"foreignKey:EmployeeID" json:"employee,omitempty" validate:"-"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Customer        *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty" validate:"-"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	TaxRate         decimal.Decimal `gorm:"type:numeric(5,4);not null" json:"tax_rate"`
	DiscountApplied bool            `gorm:"default:false" json:"discount_applied"`
	CouponCode      *string         `gorm:"type:varchar(50)" json:"coupon_code,omitempty"` // null unless a valid coupon was applied

	// Relasi
	Items   []TransactionItem `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Rentals []Rental          `gorm:"foreignKey:TransactionID" json:"rentals,omitempty"`
}

// TransactionItem is one cart line inside a transaction. UnitPrice is a
// snapshot taken at transaction time, not a live reference to Item.Price.
type TransactionItem struct {
	BaseModel
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ItemID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id" validate:"uuid_required"`
	Item          *Item           `gorm:"foreignKey:ItemID" json:"item,omitempty" validate:"-"`
	Quantity      int             `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
}

// BeforeSave recomputes the subtotal on every write
func (ti *TransactionItem) BeforeSave(tx *gorm.DB) error {
	ti.Subtotal = ti.UnitPrice.Mul(decimal.NewFromInt(int64(ti.Quantity)))
	return nil
}
