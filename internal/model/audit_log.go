package model

import "github.com/google/uuid"

type AuditAction string

const (
	ActionLogin              AuditAction = "login"
	ActionLogout             AuditAction = "logout"
	ActionTransactionCreated AuditAction = "transaction_created"
	ActionEmployeeCreated    AuditAction = "employee_created"
	ActionEmployeeUpdated    AuditAction = "employee_updated"
	ActionEmployeeDeleted    AuditAction = "employee_deleted"
)

// AuditLog is an append-only record of an employee action. Writing it is
// best-effort: a failed append never fails the operation that triggered it.
type AuditLog struct {
	BaseModel
	EmployeeID uuid.UUID   `gorm:"type:uuid;not null;index" json:"employee_id"`
	Employee   *Employee   `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Action     AuditAction `gorm:"type:varchar(50);not null;index" json:"action"`
	Details    string      `gorm:"type:text" json:"details"`
	IPAddress  *string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
}
