package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmployeeInactive   = errors.New("employee account is inactive")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

type AuthService interface {
	Login(username, password string) (*LoginResponse, error)
	Logout(employeeID uuid.UUID) error
	ResetPassword(username, oldPassword, newPassword string) error
}

type LoginResponse struct {
	Token    string                 `json:"token"`
	Employee model.EmployeeResponse `json:"employee"`
}

type authService struct {
	employeeRepo repository.EmployeeRepository
	auditRepo    repository.AuditLogRepository
}

func NewAuthService(employeeRepo repository.EmployeeRepository, auditRepo repository.AuditLogRepository) AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		auditRepo:    auditRepo,
	}
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	// 1. Find employee by username
	employee, err := s.employeeRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Check if employee is active
	if !employee.IsActive {
		return nil, ErrEmployeeInactive
	}

	// 3. Verify password
	if !employee.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 4. Generate JWT token
	token, err := jwt.GenerateToken(employee.ID, employee.Username, employee.FullName(), string(employee.Position))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	// 5. Audit trail (best-effort)
	s.logAudit(employee.ID, model.ActionLogin, fmt.Sprintf("Employee %s logged in", employee.Username))

	return &LoginResponse{
		Token:    token,
		Employee: employee.ToResponse(),
	}, nil
}

func (s *authService) Logout(employeeID uuid.UUID) error {
	employee, err := s.employeeRepo.FindByID(employeeID)
	if err != nil {
		return ErrEmployeeNotFound
	}

	s.logAudit(employee.ID, model.ActionLogout, fmt.Sprintf("Employee %s logged out", employee.Username))
	return nil
}

func (s *authService) ResetPassword(username, oldPassword, newPassword string) error {
	// 1. Find employee by username
	employee, err := s.employeeRepo.FindByUsername(username)
	if err != nil {
		return ErrEmployeeNotFound
	}

	// 2. Verify old password
	if !employee.CheckPassword(oldPassword) {
		return ErrWrongPassword
	}

	// 3. Set new password
	if err := employee.SetPassword(newPassword); err != nil {
		return errors.New("failed to hash new password")
	}

	// 4. Update in database
	return s.employeeRepo.Update(employee)
}

func (s *authService) logAudit(employeeID uuid.UUID, action model.AuditAction, details string) {
	entry := &model.AuditLog{
		EmployeeID: employeeID,
		Action:     action,
		Details:    details,
	}
	if err := s.auditRepo.Create(entry); err != nil {
		log.Printf("Warning: failed to write audit log (%s): %v", action, err)
	}
}
