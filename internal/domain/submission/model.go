package submission

import (
	"time"

	"github.com/linskybing/fyp-portal/internal/domain/project"
)

type Status string

const (
	StatusPending          Status = "Pending"
	StatusApproved         Status = "Approved"
	StatusRejected         Status = "Rejected"
	StatusChangesRequested Status = "Changes Requested"
)

// transitions lists the legal moves out of each state. Approved and
// Rejected have none.
var transitions = map[Status][]Status{
	StatusPending:          {StatusApproved, StatusChangesRequested, StatusRejected},
	StatusChangesRequested: {StatusPending},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusChangesRequested:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

type Submission struct {
	ID                 uint             `gorm:"primaryKey" json:"submission_id"`
	StudentID          uint             `gorm:"not null;index" json:"student_id"`
	ProjectID          uint             `gorm:"not null;index" json:"project_id"`
	Status             Status           `gorm:"type:varchar(32);not null;default:'Pending';index" json:"status"`
	SupervisorResponse *string          `gorm:"type:text" json:"supervisor_response"`
	Grade              *string          `gorm:"size:32" json:"grade"`
	ReviewRound        int              `gorm:"not null;default:1" json:"review_round"`
	RequestedAt        time.Time        `gorm:"not null" json:"requested_at"`
	ReviewedAt         *time.Time       `json:"reviewed_at"`
	Project            *project.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	Reviews            []Review         `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// Review is one supervisor decision. Rows are only ever appended.
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SubmissionID uint      `gorm:"not null;index" json:"submission_id"`
	Round        int       `gorm:"not null" json:"round"`
	Decision     Status    `gorm:"type:varchar(32);not null" json:"decision"`
	Response     string    `gorm:"type:text" json:"response"`
	Grade        *string   `gorm:"size:32" json:"grade"`
	ReviewerID   uint      `gorm:"not null" json:"reviewer_id"`
	ReviewedAt   time.Time `gorm:"not null" json:"reviewed_at"`
}

func (Review) TableName() string {
	return "submission_reviews"
}

// Transition is a guarded status change applied by the store with
// WHERE id = ? AND status = From.
type Transition struct {
	ID                 uint
	From               Status
	To                 Status
	SupervisorResponse *string
	Grade              *string
	ReviewedAt         *time.Time
	RequestedAt        *time.Time
	ClearReviewedAt    bool
	BumpRound          bool
}
