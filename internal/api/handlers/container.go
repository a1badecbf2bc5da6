package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/application"
)

type Handlers struct {
	Audit         *AuditHandler
	Activity      *ActivityHandler
	User          *UserHandler
	Tag           *TagHandler
	Project       *ProjectHandler
	Submission    *SubmissionHandler
	AccessRequest *AccessRequestHandler
	Upload        *UploadHandler
	Dashboard     *DashboardHandler
	Router        *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	h := &Handlers{
		Audit:         NewAuditHandler(svc.Audit),
		Activity:      NewActivityHandler(svc.Activity),
		User:          NewUserHandler(svc.User),
		Tag:           NewTagHandler(svc.Tag),
		Project:       NewProjectHandler(svc.Project, svc.Submission),
		Submission:    NewSubmissionHandler(svc.Submission),
		AccessRequest: NewAccessRequestHandler(svc.AccessRequest),
		Upload:        NewUploadHandler(svc.Upload),
		Dashboard:     NewDashboardHandler(svc.Dashboard),
		Router:        router,
	}
	return h
}
