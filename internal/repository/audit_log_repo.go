package repository

import (
	"go-pos-backend/internal/model"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(entry *model.AuditLog) error
	FindRecent(limit int) ([]model.AuditLog, error)
}

type auditLogRepo struct {
	db *gorm.DB
}

func NewAuditLogRepo(db *gorm.DB) AuditLogRepository {
	return &auditLogRepo{db}
}

func (r *auditLogRepo) Create(entry *model.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditLogRepo) FindRecent(limit int) ([]model.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []model.AuditLog
	err := r.db.Preload("Employee").Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
