package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon is a percentage discount code. DiscountPercentage is validated to
// [0,100] when the coupon is written; readers must not clamp it again.
type Coupon struct {
	BaseModel
	Code               string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"discount_percentage"`
	IsActive           bool            `gorm:"default:true;index" json:"is_active"`
	ExpiresAt          *time.Time      `json:"expires_at,omitempty"`
}

// IsValid checks active flag and expiry against the current moment.
// Validity is never cached; the engine evaluates it at the moment of sale.
func (c *Coupon) IsValid() bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && c.ExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}

// ApplyDiscount returns the discounted amount, or the amount unchanged when
// the coupon is not valid.
func (c *Coupon) ApplyDiscount(amount decimal.Decimal) decimal.Decimal {
	if !c.IsValid() {
		return amount
	}
	multiplier := decimal.NewFromInt(1).Sub(c.DiscountPercentage.Div(decimal.NewFromInt(100)))
	return amount.Mul(multiplier)
}
