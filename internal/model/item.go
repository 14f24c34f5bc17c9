package model

import "github.com/shopspring/decimal"

// Item is a single inventory article. LegacyItemID is the numeric id assigned
// by the old register software and is still what staff type at the counter.
type Item struct {
	BaseModel
	LegacyItemID int             `gorm:"uniqueIndex;not null" json:"legacy_item_id" validate:"required,gt=0"`
	Name         string          `gorm:"type:varchar(200);not null;index" json:"name" validate:"required"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Quantity     int             `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
}

// IsAvailable checks whether at least the requested quantity is on hand.
func (i *Item) IsAvailable(requested int) bool {
	return i.Quantity >= requested
}
