package service

import (
	"testing"

	"go-pos-backend/internal/model"
	"go-pos-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmployee(t *testing.T, username, password string, active bool) *model.Employee {
	t.Helper()
	employee := &model.Employee{
		Username:  username,
		FirstName: "Jane",
		LastName:  "Doe",
		Position:  model.PositionCashier,
		IsActive:  active,
	}
	employee.ID = uuid.New()
	require.NoError(t, employee.SetPassword(password))
	return employee
}

func TestLoginSuccess(t *testing.T) {
	employee := newTestEmployee(t, "jane", "secret123", true)
	auditRepo := &fakeAuditRepo{}
	svc := NewAuthService(newFakeEmployeeRepo(employee), auditRepo)

	resp, err := svc.Login("jane", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "jane", resp.Employee.Username)
	assert.Equal(t, "Jane", resp.Employee.FirstName)
	assert.Equal(t, model.PositionCashier, resp.Employee.Position)

	// token must round-trip through our own validator
	claims, err := jwt.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, employee.ID, claims.EmployeeID)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, string(model.PositionCashier), claims.Position)

	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, model.ActionLogin, auditRepo.entries[0].Action)
}

func TestLoginFailures(t *testing.T) {
	employee := newTestEmployee(t, "jane", "secret123", true)
	inactive := newTestEmployee(t, "bob", "secret123", false)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"unknown username", "nobody", "secret123", ErrInvalidCredentials},
		{"wrong password", "jane", "wrong", ErrInvalidCredentials},
		{"inactive account", "bob", "secret123", ErrEmployeeInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auditRepo := &fakeAuditRepo{}
			svc := NewAuthService(newFakeEmployeeRepo(employee, inactive), auditRepo)

			_, err := svc.Login(tt.username, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, auditRepo.entries)
		})
	}
}

func TestLogoutWritesAuditEntry(t *testing.T) {
	employee := newTestEmployee(t, "jane", "secret123", true)
	auditRepo := &fakeAuditRepo{}
	svc := NewAuthService(newFakeEmployeeRepo(employee), auditRepo)

	require.NoError(t, svc.Logout(employee.ID))
	require.Len(t, auditRepo.entries, 1)
	assert.Equal(t, model.ActionLogout, auditRepo.entries[0].Action)

	require.ErrorIs(t, svc.Logout(uuid.New()), ErrEmployeeNotFound)
}

func TestResetPassword(t *testing.T) {
	employee := newTestEmployee(t, "jane", "secret123", true)
	svc := NewAuthService(newFakeEmployeeRepo(employee), &fakeAuditRepo{})

	require.ErrorIs(t, svc.ResetPassword("nobody", "secret123", "newpass1"), ErrEmployeeNotFound)
	require.ErrorIs(t, svc.ResetPassword("jane", "wrong", "newpass1"), ErrWrongPassword)

	require.NoError(t, svc.ResetPassword("jane", "secret123", "newpass1"))
	assert.True(t, employee.CheckPassword("newpass1"))
	assert.False(t, employee.CheckPassword("secret123"))
}
