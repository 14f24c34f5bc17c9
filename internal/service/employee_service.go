package service

import (
	"errors"
	"fmt"
	"log"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
)

var ErrUsernameExists = errors.New("username already exists")

type EmployeeService interface {
	CreateEmployee(req *CreateEmployeeRequest, creatorID string) (*model.Employee, error)
	UpdateEmployee(employeeID uuid.UUID, req *UpdateEmployeeRequest, updaterID string) (*model.Employee, error)
	DeactivateEmployee(employeeID uuid.UUID, updaterID string) error
	GetAllEmployees() ([]model.EmployeeResponse, error)
	GetEmployeeByID(id uuid.UUID) (*model.EmployeeResponse, error)
}

type CreateEmployeeRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Position  string `json:"position" validate:"required,oneof=Admin Cashier"`
}

type UpdateEmployeeRequest struct {
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Position  string  `json:"position" validate:"required,oneof=Admin Cashier"`
	IsActive  *bool   `json:"is_active"`
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	auditRepo    repository.AuditLogRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, auditRepo repository.AuditLogRepository) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		auditRepo:    auditRepo,
	}
}

func (s *employeeService) CreateEmployee(req *CreateEmployeeRequest, creatorID string) (*model.Employee, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Check if username already exists
	existing, _ := s.employeeRepo.FindByUsername(req.Username)
	if existing != nil {
		return nil, ErrUsernameExists
	}

	// 3. Create employee
	employee := &model.Employee{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  model.Position(req.Position),
		IsActive:  true,
	}
	employee.CreatedBy = creatorID
	employee.UpdatedBy = creatorID

	// 4. Set password
	if err := employee.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	// 5. Save to database
	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, err
	}

	s.auditEmployeeAction(employee.ID, model.ActionEmployeeCreated,
		fmt.Sprintf("New employee %s created", employee.Username))

	return employee, nil
}

func (s *employeeService) UpdateEmployee(employeeID uuid.UUID, req *UpdateEmployeeRequest, updaterID string) (*model.Employee, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Find existing employee
	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}

	// 3. Update fields
	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Position = model.Position(req.Position)
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	employee.UpdatedBy = updaterID

	// 4. Update password if provided
	if req.Password != nil && *req.Password != "" {
		if err := employee.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	// 5. Save to database
	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, err
	}

	s.auditEmployeeAction(employee.ID, model.ActionEmployeeUpdated,
		fmt.Sprintf("Employee %s updated", employee.Username))

	return employee, nil
}

// DeactivateEmployee is a soft delete: the record stays because transactions
// and audit logs reference it.
func (s *employeeService) DeactivateEmployee(employeeID uuid.UUID, updaterID string) error {
	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		return ErrEmployeeNotFound
	}

	employee.IsActive = false
	employee.UpdatedBy = updaterID
	if err := s.employeeRepo.Update(employee); err != nil {
		return err
	}

	s.auditEmployeeAction(employee.ID, model.ActionEmployeeDeleted,
		fmt.Sprintf("Employee %s deactivated", employee.Username))

	return nil
}

func (s *employeeService) GetAllEmployees() ([]model.EmployeeResponse, error) {
	employees, err := s.employeeRepo.FindAllActive()
	if err != nil {
		return nil, err
	}

	responses := make([]model.EmployeeResponse, len(employees))
	for i, employee := range employees {
		responses[i] = employee.ToResponse()
	}
	return responses, nil
}

func (s *employeeService) GetEmployeeByID(id uuid.UUID) (*model.EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}
	response := employee.ToResponse()
	return &response, nil
}

func (s *employeeService) auditEmployeeAction(employeeID uuid.UUID, action model.AuditAction, details string) {
	entry := &model.AuditLog{
		EmployeeID: employeeID,
		Action:     action,
		Details:    details,
	}
	if err := s.auditRepo.Create(entry); err != nil {
		log.Printf("Warning: failed to write audit log (%s): %v", action, err)
	}
}
