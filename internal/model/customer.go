package model

// Customer is identified by phone number only. Created lazily on the first
// rental and never updated afterwards.
type Customer struct {
	BaseModel
	PhoneNumber string `gorm:"type:varchar(15);uniqueIndex;not null" json:"phone_number" validate:"required,phone"`

	// Relasi
	Rentals []Rental `gorm:"foreignKey:CustomerID" json:"rentals,omitempty"`
}
