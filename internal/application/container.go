package application

import (
	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/notify"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/internal/storage"
)

type Services struct {
	Activity      *ActivityHub
	Audit         *AuditService
	User          *UserService
	Tag           *TagService
	Project       *ProjectService
	Submission    *SubmissionService
	AccessRequest *AccessRequestService
	Dashboard     *DashboardService
	Upload        *UploadService
}

func New(repos *repository.Repos, store storage.ObjectStore, notifier notify.Notifier, catalog *config.SeedCatalog) *Services {
	hub := NewActivityHub(0)
	auditSvc := NewAuditService(repos, hub)
	return &Services{
		Activity:      hub,
		Audit:         auditSvc,
		User:          NewUserService(repos, auditSvc),
		Tag:           NewTagService(repos, auditSvc),
		Project:       NewProjectService(repos, store, hub, catalog),
		Submission:    NewSubmissionService(repos, store, notifier, hub, catalog),
		AccessRequest: NewAccessRequestService(repos, notifier, hub),
		Dashboard:     NewDashboardService(repos),
		Upload:        NewUploadService(store, auditSvc),
	}
}
