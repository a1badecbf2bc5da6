package submission

import (
	"io"
	"strings"

	"github.com/linskybing/fyp-portal/internal/domain/project"
)

type Decision string

const (
	DecisionApprove        Decision = "Approve"
	DecisionRequestChanges Decision = "RequestChanges"
	DecisionReject         Decision = "Reject"
)

// ParseDecision accepts both the decision verbs and the resulting status names.
func ParseDecision(raw string) (Decision, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approve", "approved":
		return DecisionApprove, true
	case "requestchanges", "request_changes", "changes requested", "changes_requested":
		return DecisionRequestChanges, true
	case "reject", "rejected":
		return DecisionReject, true
	}
	return "", false
}

func (d Decision) Target() Status {
	switch d {
	case DecisionApprove:
		return StatusApproved
	case DecisionRequestChanges:
		return StatusChangesRequested
	case DecisionReject:
		return StatusRejected
	}
	return ""
}

// Upload is a document received in the same request as the draft.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Slot is one attachment position. Exactly one of Upload or Retained
// should be set; a slot with neither is skipped.
type Slot struct {
	Upload   *Upload
	Retained *project.AttachmentRef
}

func (s Slot) Empty() bool {
	return s.Upload == nil && (s.Retained == nil || s.Retained.URL == "")
}

type Draft struct {
	Title        string   `json:"title" form:"title"`
	Description  string   `json:"description" form:"description"`
	Category     string   `json:"category" form:"category"`
	AcademicYear string   `json:"academic_year" form:"academic_year"`
	SupervisorID uint     `json:"supervisor_id" form:"supervisor_id"`
	StudentNames []string `json:"student_names" form:"student_names"`
	Tags         []string `json:"tags" form:"tags"`
	Slots        []Slot   `json:"-" form:"-"`
}

// Update carries resubmitted project fields. Nil fields keep their value.
type Update struct {
	Title        *string  `json:"title,omitempty" form:"title"`
	Description  *string  `json:"description,omitempty" form:"description"`
	Category     *string  `json:"category,omitempty" form:"category"`
	AcademicYear *string  `json:"academic_year,omitempty" form:"academic_year"`
	SupervisorID *uint    `json:"supervisor_id,omitempty" form:"supervisor_id"`
	StudentNames []string `json:"student_names,omitempty" form:"student_names"`
	Tags         []string `json:"tags,omitempty" form:"tags"`
	Slots        []Slot   `json:"-" form:"-"`
}

type ReviewInput struct {
	Decision string  `json:"decision" form:"decision"`
	Status   string  `json:"status" form:"status"`
	Response string  `json:"supervisor_response" form:"supervisor_response"`
	Grade    *string `json:"grade" form:"grade"`
}

// DecisionText returns the explicit decision, falling back to the status field.
func (r ReviewInput) DecisionText() string {
	if strings.TrimSpace(r.Decision) != "" {
		return r.Decision
	}
	return r.Status
}

type ListFilter struct {
	StudentID    *uint
	SupervisorID *uint
	Status       *Status
}

type StudentStatus struct {
	Submission *Submission `json:"submission"`
	Actions    []string    `json:"actions"`
}
