package dashboard

import (
	"github.com/linskybing/fyp-portal/internal/domain/access"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/linskybing/fyp-portal/internal/domain/user"
)

// Follow-up actions offered to a student next to their submission status.
const (
	ActionPropose         = "propose"
	ActionEditAndResubmit = "edit-and-resubmit"
	ActionViewProject     = "view-project"
	ActionAwaitReview     = "await-review"
)

type Student struct {
	Role             user.Role              `json:"role"`
	ApprovedRequests int                    `json:"approved_requests"`
	PendingRequests  int                    `json:"pending_requests"`
	TotalRequests    int                    `json:"total_requests"`
	ApprovedProjects []project.Project      `json:"approved_projects"`
	Submission       *submission.Submission `json:"submission"`
	Actions          []string               `json:"actions"`
}

type Supervisor struct {
	Role               user.Role               `json:"role"`
	ProjectsSupervised int                     `json:"projects_supervised"`
	PendingRequests    []access.WithProject    `json:"pending_requests"`
	RequestHistory     []access.WithProject    `json:"request_history"`
	PendingSubmissions []submission.Submission `json:"pending_submissions"`
	RecentProjects     []project.Project       `json:"recent_projects"`
}

type Admin struct {
	Role           user.Role                   `json:"role"`
	Users          map[user.Role]int64         `json:"users"`
	TotalUsers     int64                       `json:"total_users"`
	InactiveUsers  int64                       `json:"inactive_users"`
	Projects       map[project.Status]int64    `json:"projects"`
	AccessRequests map[access.Status]int64     `json:"access_requests"`
	Submissions    map[submission.Status]int64 `json:"submissions"`
	RecentActivity []audit.AuditLog            `json:"recent_activity"`
}

// ActionsFor lists what a student can do next given their latest submission.
func ActionsFor(sub *submission.Submission) []string {
	if sub == nil {
		return []string{ActionPropose}
	}
	switch sub.Status {
	case submission.StatusPending:
		return []string{ActionAwaitReview}
	case submission.StatusChangesRequested:
		return []string{ActionEditAndResubmit}
	case submission.StatusApproved:
		return []string{ActionViewProject}
	default:
		return []string{ActionPropose}
	}
}
