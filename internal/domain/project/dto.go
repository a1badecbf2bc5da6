package project

// AttachmentRef points at an artifact already held by the object store,
// either returned by the upload endpoint or kept from a previous revision.
type AttachmentRef struct {
	URL      string `json:"url" form:"url"`
	PublicID string `json:"public_id" form:"public_id"`
	FileName string `json:"file_name" form:"file_name"`
	FileType string `json:"file_type" form:"file_type"`
	Size     int64  `json:"size" form:"size"`
}

type CreateProjectDTO struct {
	Title        string          `json:"title" form:"title" example:"Smart Irrigation"`
	Description  string          `json:"description" form:"description"`
	Category     string          `json:"category" form:"category" example:"IoT"`
	AcademicYear string          `json:"academic_year" form:"academic_year" example:"2025"`
	SupervisorID uint            `json:"supervisor_id" form:"supervisor_id"`
	StudentNames []string        `json:"student_names" form:"student_names"`
	Tags         []string        `json:"tags" form:"tags"`
	FinalRemark  string          `json:"final_remark" form:"final_remark"`
	Attachments  []AttachmentRef `json:"attachments"`
}

type UpdateProjectDTO struct {
	Title        *string         `json:"title,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Category     *string         `json:"category,omitempty"`
	AcademicYear *string         `json:"academic_year,omitempty"`
	SupervisorID *uint           `json:"supervisor_id,omitempty"`
	StudentNames []string        `json:"student_names,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	Grade        *string         `json:"grade,omitempty"`
	FinalRemark  *string         `json:"final_remark,omitempty"`
	Attachments  []AttachmentRef `json:"attachments,omitempty"`
}

type ListFilter struct {
	SupervisorID *uint
	OwnerID      *uint
	Status       *Status
	Category     string
	AcademicYear string
	Tag          string
	Search       string
	Limit        int
}

// View is a project as seen by one viewer. Attachments are stripped
// when ArtifactsVisible is false.
type View struct {
	Project
	ArtifactsVisible bool    `json:"artifacts_visible"`
	AccessStatus     *string `json:"access_status,omitempty"`
}
