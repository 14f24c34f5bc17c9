package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Position string

const (
	PositionAdmin   Position = "Admin"
	PositionCashier Position = "Cashier"
)

// Employee represents a store employee who can operate the register
type Employee struct {
	BaseModel
	Username  string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"username" validate:"required"`
	Password  string   `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FirstName string   `gorm:"type:varchar(100)" json:"first_name" validate:"required"`
	LastName  string   `gorm:"type:varchar(100)" json:"last_name" validate:"required"`
	Position  Position `gorm:"type:varchar(10);not null;index" json:"position" validate:"required,oneof=Admin Cashier"`
	IsActive  bool     `gorm:"default:true" json:"is_active"`
}

// SetPassword hashes and sets the employee's password
func (e *Employee) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (e *Employee) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password))
	return err == nil
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e *Employee) IsAdmin() bool {
	return e.Position == PositionAdmin
}

// EmployeeResponse is used for API responses (without the password hash)
type EmployeeResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Position  Position  `json:"position"`
	IsActive  bool      `json:"is_active"`
}

// ToResponse converts Employee to EmployeeResponse
func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Username:  e.Username,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Position:  e.Position,
		IsActive:  e.IsActive,
	}
}
