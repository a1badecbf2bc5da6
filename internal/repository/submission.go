package repository

import (
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	CreateSubmission(s *submission.Submission) error
	GetSubmissionByID(id uint) (submission.Submission, error)
	GetActiveByStudent(studentID uint) (submission.Submission, error)
	GetLatestByStudent(studentID uint) (submission.Submission, error)
	ListSubmissions(filter submission.ListFilter) ([]submission.Submission, error)
	TransitionStatus(t submission.Transition) error
	CreateReview(r *submission.Review) error
	ListReviews(submissionID uint) ([]submission.Review, error)
	CountByStatus() (map[submission.Status]int64, error)
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{
		db: db,
	}
}

func (r *DBSubmissionRepo) withProject() *gorm.DB {
	return r.db.
		Preload("Project").
		Preload("Project.Tags").
		Preload("Project.Attachments", func(db *gorm.DB) *gorm.DB { return db.Order("slot ASC") })
}

func (r *DBSubmissionRepo) CreateSubmission(s *submission.Submission) error {
	return r.db.Omit("Project", "Reviews").Create(s).Error
}

func (r *DBSubmissionRepo) GetSubmissionByID(id uint) (submission.Submission, error) {
	var s submission.Submission
	err := r.withProject().
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("round ASC, id ASC") }).
		First(&s, id).Error
	return s, err
}

func (r *DBSubmissionRepo) GetActiveByStudent(studentID uint) (submission.Submission, error) {
	var s submission.Submission
	err := r.db.Where("student_id = ? AND status <> ?", studentID, submission.StatusRejected).
		First(&s).Error
	return s, err
}

func (r *DBSubmissionRepo) GetLatestByStudent(studentID uint) (submission.Submission, error) {
	var s submission.Submission
	err := r.withProject().
		Where("student_id = ?", studentID).
		Order("requested_at DESC, id DESC").
		First(&s).Error
	return s, err
}

func (r *DBSubmissionRepo) ListSubmissions(filter submission.ListFilter) ([]submission.Submission, error) {
	var subs []submission.Submission
	query := r.withProject().Model(&submission.Submission{})

	if filter.StudentID != nil {
		query = query.Where("submissions.student_id = ?", *filter.StudentID)
	}
	if filter.SupervisorID != nil {
		query = query.Joins("JOIN projects ON projects.id = submissions.project_id").
			Where("projects.supervisor_id = ?", *filter.SupervisorID)
	}
	if filter.Status != nil {
		query = query.Where("submissions.status = ?", *filter.Status)
	}

	err := query.Order("submissions.requested_at DESC").Find(&subs).Error
	return subs, err
}

// TransitionStatus applies t only if the row is still in t.From.
func (r *DBSubmissionRepo) TransitionStatus(t submission.Transition) error {
	updates := map[string]any{"status": t.To}
	if t.SupervisorResponse != nil {
		updates["supervisor_response"] = *t.SupervisorResponse
	}
	if t.Grade != nil {
		updates["grade"] = *t.Grade
	}
	if t.ReviewedAt != nil {
		updates["reviewed_at"] = *t.ReviewedAt
	}
	if t.ClearReviewedAt {
		updates["reviewed_at"] = nil
	}
	if t.RequestedAt != nil {
		updates["requested_at"] = *t.RequestedAt
	}
	if t.BumpRound {
		updates["review_round"] = gorm.Expr("review_round + 1")
	}

	res := r.db.Model(&submission.Submission{}).
		Where("id = ? AND status = ?", t.ID, t.From).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStateChanged
	}
	return nil
}

func (r *DBSubmissionRepo) CreateReview(rv *submission.Review) error {
	return r.db.Create(rv).Error
}

func (r *DBSubmissionRepo) ListReviews(submissionID uint) ([]submission.Review, error) {
	var reviews []submission.Review
	err := r.db.Where("submission_id = ?", submissionID).Order("round ASC, id ASC").Find(&reviews).Error
	return reviews, err
}

func (r *DBSubmissionRepo) CountByStatus() (map[submission.Status]int64, error) {
	var rows []struct {
		Status submission.Status
		Count  int64
	}
	if err := r.db.Model(&submission.Submission{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[submission.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{
		db: tx,
	}
}
