package access

type CreateInput struct {
	ProjectID uint   `json:"project_id" form:"project_id" binding:"required"`
	Reason    string `json:"reason" form:"reason"`
}

type ReviewInput struct {
	Decision string `json:"decision" form:"decision"`
	Status   string `json:"status" form:"status"`
	Response string `json:"supervisor_response" form:"supervisor_response"`
}

func (r ReviewInput) DecisionText() string {
	if r.Decision != "" {
		return r.Decision
	}
	return r.Status
}
