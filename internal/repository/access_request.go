package repository

import (
	"time"

	"github.com/linskybing/fyp-portal/internal/domain/access"
	"gorm.io/gorm"
)

type AccessRequestRepo interface {
	CreateRequest(req *access.Request) error
	GetRequestByID(id uint) (access.Request, error)
	FindPending(studentID, projectID uint) (access.Request, error)
	ListByStudent(studentID uint) ([]access.WithProject, error)
	ListBySupervisor(supervisorID uint) ([]access.WithProject, error)
	ListByStudentAndProject(studentID, projectID uint) ([]access.Request, error)
	TransitionStatus(id uint, from, to access.Status, response *string, reviewedAt time.Time) error
	DeletePending(id uint) error
	CountByStatus() (map[access.Status]int64, error)
	WithTx(tx *gorm.DB) AccessRequestRepo
}

type DBAccessRequestRepo struct {
	db *gorm.DB
}

func NewAccessRequestRepo(db *gorm.DB) *DBAccessRequestRepo {
	return &DBAccessRequestRepo{
		db: db,
	}
}

func (r *DBAccessRequestRepo) CreateRequest(req *access.Request) error {
	return r.db.Create(req).Error
}

func (r *DBAccessRequestRepo) GetRequestByID(id uint) (access.Request, error) {
	var req access.Request
	err := r.db.First(&req, id).Error
	return req, err
}

func (r *DBAccessRequestRepo) FindPending(studentID, projectID uint) (access.Request, error) {
	var req access.Request
	err := r.db.Where("student_id = ? AND project_id = ? AND status = ?", studentID, projectID, access.StatusPending).
		First(&req).Error
	return req, err
}

func (r *DBAccessRequestRepo) enriched() *gorm.DB {
	return r.db.Table("access_requests ar").
		Select("ar.*, p.title AS project_title, u.name AS student_name").
		Joins("JOIN projects p ON p.id = ar.project_id").
		Joins("LEFT JOIN users u ON u.id = ar.student_id")
}

func (r *DBAccessRequestRepo) ListByStudent(studentID uint) ([]access.WithProject, error) {
	var results []access.WithProject
	err := r.enriched().
		Where("ar.student_id = ?", studentID).
		Order("ar.requested_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *DBAccessRequestRepo) ListBySupervisor(supervisorID uint) ([]access.WithProject, error) {
	var results []access.WithProject
	err := r.enriched().
		Where("p.supervisor_id = ?", supervisorID).
		Order("ar.requested_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *DBAccessRequestRepo) ListByStudentAndProject(studentID, projectID uint) ([]access.Request, error) {
	var reqs []access.Request
	err := r.db.Where("student_id = ? AND project_id = ?", studentID, projectID).
		Order("requested_at DESC, id DESC").
		Find(&reqs).Error
	return reqs, err
}

// TransitionStatus records a decision only if the request is still in from.
func (r *DBAccessRequestRepo) TransitionStatus(id uint, from, to access.Status, response *string, reviewedAt time.Time) error {
	updates := map[string]any{
		"status":      to,
		"reviewed_at": reviewedAt,
	}
	if response != nil {
		updates["supervisor_response"] = *response
	}
	res := r.db.Model(&access.Request{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateChanged
	}
	return nil
}

func (r *DBAccessRequestRepo) DeletePending(id uint) error {
	res := r.db.Where("id = ? AND status = ?", id, access.StatusPending).Delete(&access.Request{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateChanged
	}
	return nil
}

func (r *DBAccessRequestRepo) CountByStatus() (map[access.Status]int64, error) {
	var rows []struct {
		Status access.Status
		Count  int64
	}
	if err := r.db.Model(&access.Request{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[access.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *DBAccessRequestRepo) WithTx(tx *gorm.DB) AccessRequestRepo {
	if tx == nil {
		return r
	}
	return &DBAccessRequestRepo{
		db: tx,
	}
}
