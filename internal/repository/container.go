package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User          UserRepo
	Tag           TagRepo
	Project       ProjectRepo
	Submission    SubmissionRepo
	AccessRequest AccessRequestRepo
	Audit         AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:          NewUserRepo(db),
		Tag:           NewTagRepo(db),
		Project:       NewProjectRepo(db),
		Submission:    NewSubmissionRepo(db),
		AccessRequest: NewAccessRequestRepo(db),
		Audit:         NewAuditRepo(db),
		db:            db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:          r.User.WithTx(tx),
		Tag:           r.Tag.WithTx(tx),
		Project:       r.Project.WithTx(tx),
		Submission:    r.Submission.WithTx(tx),
		AccessRequest: r.AccessRequest.WithTx(tx),
		Audit:         r.Audit.WithTx(tx),
		db:            tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction. Repos
// assembled without a database (mocks, fakes) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
