package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	FindByUsername(username string) (*model.Employee, error)
	FindByID(id uuid.UUID) (*model.Employee, error)
	Create(employee *model.Employee) error
	Update(employee *model.Employee) error
	UpdatePassword(employeeID uuid.UUID, hashedPassword string) error
	FindAllActive() ([]model.Employee, error)
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

func (r *employeeRepo) FindByUsername(username string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.Where("username = ?", username).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) FindByID(id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.First(&employee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepo) Update(employee *model.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepo) UpdatePassword(employeeID uuid.UUID, hashedPassword string) error {
	return r.db.Model(&model.Employee{}).Where("id = ?", employeeID).Update("password", hashedPassword).Error
}

func (r *employeeRepo) FindAllActive() ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("is_active = ?", true).Order("username ASC").Find(&employees).Error
	return employees, err
}
