package repository

import (
	"time"

	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"gorm.io/gorm"
)

// AuditQueryParams filters the activity feed. Nil fields are ignored.
type AuditQueryParams struct {
	UserID       *uint
	ResourceType *string
	ResourceID   *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

type AuditRepo interface {
	GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, error)
	FindEntry(userID uint, action, resourceType, resourceID string) (audit.AuditLog, error)
	CreateAuditLog(entry *audit.AuditLog) error
	DeleteOldAuditLogs(retentionDays int) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

// DeleteOldAuditLogs applies the retention window and reports how many
// entries went. An artifact whose upload entry expired can no longer be
// attached to a new project.
func (r *DBAuditRepo) DeleteOldAuditLogs(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) GetAuditLogs(params AuditQueryParams) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	query := r.filtered(params)

	query = query.Order("created_at DESC, id DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Find(&logs).Error
	return logs, err
}

// FindEntry returns the latest entry written by userID for one resource.
func (r *DBAuditRepo) FindEntry(userID uint, action, resourceType, resourceID string) (audit.AuditLog, error) {
	var entry audit.AuditLog
	err := r.filtered(AuditQueryParams{
		UserID:       &userID,
		Action:       &action,
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
	}).Order("created_at DESC, id DESC").First(&entry).Error
	return entry, err
}

func (r *DBAuditRepo) filtered(params AuditQueryParams) *gorm.DB {
	query := r.db.Model(&audit.AuditLog{})
	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.ResourceType != nil {
		query = query.Where("resource_type = ?", *params.ResourceType)
	}
	if params.ResourceID != nil {
		query = query.Where("resource_id = ?", *params.ResourceID)
	}
	if params.Action != nil {
		query = query.Where("action = ?", *params.Action)
	}
	if params.StartTime != nil {
		query = query.Where("created_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		query = query.Where("created_at <= ?", *params.EndTime)
	}
	return query
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}
