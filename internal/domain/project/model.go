package project

import (
	"time"

	"github.com/lib/pq"
	"github.com/linskybing/fyp-portal/internal/domain/tag"
	"github.com/linskybing/fyp-portal/internal/domain/user"
)

// MaxAttachmentSlots is the number of document slots on a project (proposal, report).
const MaxAttachmentSlots = 2

type Status string

const (
	StatusPending Status = "Pending" // proposed by a student, awaiting approval
	StatusActive  Status = "Active"  // approved or created by staff
)

type Project struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Category     string         `gorm:"size:100;not null;index" json:"category"`
	AcademicYear string         `gorm:"size:16;index" json:"academic_year"`
	SupervisorID uint           `gorm:"not null;index" json:"supervisor_id"`
	OwnerID      uint           `gorm:"not null;index" json:"owner_id"`
	StudentNames pq.StringArray `gorm:"type:text[]" json:"student_names"`
	Grade        *string        `gorm:"size:32" json:"grade"`
	FinalRemark  string         `gorm:"type:text" json:"final_remark"`
	Status       Status         `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	Tags         []tag.Tag      `gorm:"many2many:project_tags;constraint:OnDelete:CASCADE" json:"tags"`
	Attachments  []Attachment   `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"attachments"`
	Supervisor   *user.User     `gorm:"foreignKey:SupervisorID" json:"supervisor,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Attachment references a document held by the object store.
type Attachment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Slot      int       `gorm:"not null" json:"slot"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	PublicID  string    `gorm:"size:255" json:"public_id"`
	FileName  string    `gorm:"size:255" json:"file_name"`
	FileType  string    `gorm:"size:100" json:"file_type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func (Attachment) TableName() string {
	return "project_attachments"
}

func (p *Project) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return names
}

// AttachmentByURL returns the project's stored document served at url.
func (p *Project) AttachmentByURL(url string) (Attachment, bool) {
	for _, a := range p.Attachments {
		if a.URL == url {
			return a, true
		}
	}
	return Attachment{}, false
}
