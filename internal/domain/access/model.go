package access

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsTerminal()
}

type Decision string

const (
	DecisionApprove Decision = "Approve"
	DecisionReject  Decision = "Reject"
)

func ParseDecision(raw string) (Decision, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approve", "approved":
		return DecisionApprove, true
	case "reject", "rejected":
		return DecisionReject, true
	}
	return "", false
}

func (d Decision) Target() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// Request is a student's ask to see a project's artifacts.
// At most one Pending row exists per (student, project).
type Request struct {
	ID                 uint       `gorm:"primaryKey" json:"request_id"`
	StudentID          uint       `gorm:"not null;index" json:"student_id"`
	ProjectID          uint       `gorm:"not null;index" json:"project_id"`
	Reason             string     `gorm:"type:text;not null" json:"reason"`
	Status             Status     `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	SupervisorResponse *string    `gorm:"type:text" json:"supervisor_response"`
	RequestedAt        time.Time  `gorm:"not null" json:"requested_at"`
	ReviewedAt         *time.Time `json:"reviewed_at"`
}

func (Request) TableName() string {
	return "access_requests"
}

// WithProject is a request enriched with the title of its project.
type WithProject struct {
	Request
	ProjectTitle string `json:"project_title"`
	StudentName  string `json:"student_name,omitempty"`
}
