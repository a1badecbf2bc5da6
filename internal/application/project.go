package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/access"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/linskybing/fyp-portal/internal/domain/tag"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/internal/storage"
	"github.com/linskybing/fyp-portal/pkg/types"
)

type ProjectService struct {
	Repos    *repository.Repos
	Store    storage.ObjectStore
	Activity *ActivityHub
	Catalog  *config.SeedCatalog
}

func NewProjectService(repos *repository.Repos, store storage.ObjectStore, hub *ActivityHub, catalog *config.SeedCatalog) *ProjectService {
	return &ProjectService{
		Repos:    repos,
		Store:    store,
		Activity: hub,
		Catalog:  catalog,
	}
}

// View returns a project as actor may see it. Students only see Active
// projects unless they own the project.
func (s *ProjectService) View(actor types.Actor, id uint) (*project.View, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, translate(err, "project")
	}
	if actor.Role.IsStaff() {
		v := newProjectView(p, CanViewArtifacts(actor.Role, actor.UserID, p, nil), nil)
		return &v, nil
	}

	owner := p.OwnerID == actor.UserID
	if !owner && p.Status != project.StatusActive {
		return nil, notFoundErr("project")
	}
	requests, err := s.Repos.AccessRequest.ListByStudentAndProject(actor.UserID, p.ID)
	if err != nil {
		return nil, translate(err, "access request")
	}
	visible := owner || CanViewArtifacts(actor.Role, actor.UserID, p, requests)
	v := newProjectView(p, visible, latestRequest(requests))
	return &v, nil
}

func (s *ProjectService) List(actor types.Actor, filter project.ListFilter) ([]project.View, error) {
	if !actor.Role.IsStaff() {
		active := project.StatusActive
		filter.Status = &active
	}
	projects, err := s.Repos.Project.ListProjects(filter)
	if err != nil {
		return nil, translate(err, "project")
	}

	byProject := map[uint][]access.Request{}
	if !actor.Role.IsStaff() {
		reqs, err := s.Repos.AccessRequest.ListByStudent(actor.UserID)
		if err != nil {
			return nil, translate(err, "access request")
		}
		for _, r := range reqs {
			byProject[r.ProjectID] = append(byProject[r.ProjectID], r.Request)
		}
	}

	views := make([]project.View, 0, len(projects))
	for _, p := range projects {
		reqs := byProject[p.ID]
		visible := p.OwnerID == actor.UserID || CanViewArtifacts(actor.Role, actor.UserID, p, reqs)
		views = append(views, newProjectView(p, visible, latestRequest(reqs)))
	}
	return views, nil
}

// Create adds an Active project directly. Students propose through the
// submission workflow instead.
func (s *ProjectService) Create(ctx context.Context, actor types.Actor, input project.CreateProjectDTO) (*project.Project, error) {
	if !actor.Role.IsStaff() {
		return nil, forbiddenErr("students must submit projects for review")
	}
	if input.SupervisorID == 0 && actor.Role == user.RoleSupervisor {
		input.SupervisorID = actor.UserID
	}
	if err := checkProjectFields(s.Catalog, input.Title, input.Description, input.Category, input.SupervisorID); err != nil {
		return nil, err
	}
	if actor.Role == user.RoleSupervisor && input.SupervisorID != actor.UserID {
		return nil, forbiddenErr("supervisors can only create their own projects")
	}
	if err := requireSupervisor(s.Repos, input.SupervisorID); err != nil {
		return nil, err
	}
	attachments, err := refsToAttachments(s.Repos, actor, input.Attachments, nil)
	if err != nil {
		return nil, err
	}

	p := &project.Project{
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Category:     strings.TrimSpace(input.Category),
		AcademicYear: strings.TrimSpace(input.AcademicYear),
		SupervisorID: input.SupervisorID,
		OwnerID:      actor.UserID,
		StudentNames: cleanNames(input.StudentNames),
		FinalRemark:  strings.TrimSpace(input.FinalRemark),
		Status:       project.StatusActive,
		Attachments:  attachments,
	}

	var entry *audit.AuditLog
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		tags, err := tx.Tag.FindOrCreateByNames(tag.NormalizeAll(input.Tags))
		if err != nil {
			return translate(err, "tag")
		}
		p.Tags = tags
		if err := tx.Project.CreateProject(p); err != nil {
			return translate(err, "project")
		}
		entry, err = recordTx(tx, actor, audit.ActionCreate, audit.ResourceProject, p.ID, nil, p,
			fmt.Sprintf("created project %q", p.Title))
		return err
	})
	if err != nil {
		return nil, err
	}
	s.Activity.Publish(entry)
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, actor types.Actor, id uint, input project.UpdateProjectDTO) (*project.Project, error) {
	if !actor.Role.IsStaff() {
		return nil, forbiddenErr("only supervisors can edit projects")
	}
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, translate(err, "project")
	}
	if !actor.IsAdmin() && p.SupervisorID != actor.UserID {
		return nil, forbiddenErr("you do not supervise this project")
	}

	old := p
	p.Supervisor = nil
	if input.Title != nil {
		p.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		p.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		p.Category = strings.TrimSpace(*input.Category)
	}
	if input.AcademicYear != nil {
		p.AcademicYear = strings.TrimSpace(*input.AcademicYear)
	}
	if input.SupervisorID != nil {
		p.SupervisorID = *input.SupervisorID
	}
	if input.StudentNames != nil {
		p.StudentNames = cleanNames(input.StudentNames)
	}
	if input.Grade != nil {
		g := strings.TrimSpace(*input.Grade)
		p.Grade = &g
		if g == "" {
			p.Grade = nil
		}
	}
	if input.FinalRemark != nil {
		p.FinalRemark = strings.TrimSpace(*input.FinalRemark)
	}
	if err := checkProjectFields(s.Catalog, p.Title, p.Description, p.Category, p.SupervisorID); err != nil {
		return nil, err
	}
	if p.SupervisorID != old.SupervisorID {
		if err := requireSupervisor(s.Repos, p.SupervisorID); err != nil {
			return nil, err
		}
	}
	if input.Attachments != nil {
		attachments, err := refsToAttachments(s.Repos, actor, input.Attachments, &old)
		if err != nil {
			return nil, err
		}
		p.Attachments = attachments
	}

	var entry *audit.AuditLog
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if input.Tags != nil {
			tags, err := tx.Tag.FindOrCreateByNames(tag.NormalizeAll(input.Tags))
			if err != nil {
				return translate(err, "tag")
			}
			p.Tags = tags
		}
		if err := tx.Project.UpdateProject(&p); err != nil {
			return translate(err, "project")
		}
		var err error
		entry, err = recordTx(tx, actor, audit.ActionUpdate, audit.ResourceProject, p.ID, old, p,
			fmt.Sprintf("updated project %q", p.Title))
		return err
	})
	if err != nil {
		return nil, err
	}

	if input.Attachments != nil {
		removeArtifacts(ctx, s.Store, s.Repos.Project, droppedAttachments(old.Attachments, p.Attachments))
	}
	s.Activity.Publish(entry)
	return &p, nil
}

// Delete removes a project together with its submissions and requests.
// Stored artifacts are removed afterwards on a best-effort basis.
func (s *ProjectService) Delete(ctx context.Context, actor types.Actor, id uint) error {
	if !actor.Role.IsStaff() {
		return forbiddenErr("only supervisors can delete projects")
	}
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return translate(err, "project")
	}
	if !actor.IsAdmin() && p.SupervisorID != actor.UserID {
		return forbiddenErr("you do not supervise this project")
	}

	var entry *audit.AuditLog
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Project.DeleteProject(id); err != nil {
			return translate(err, "project")
		}
		var err error
		entry, err = recordTx(tx, actor, audit.ActionDelete, audit.ResourceProject, id, p, nil,
			fmt.Sprintf("deleted project %q", p.Title))
		return err
	})
	if err != nil {
		return err
	}

	removeArtifacts(ctx, s.Store, s.Repos.Project, p.Attachments)
	s.Activity.Publish(entry)
	return nil
}

// checkProjectFields enforces the fields every project needs.
func checkProjectFields(catalog *config.SeedCatalog, title, description, category string, supervisorID uint) error {
	var missing []string
	if strings.TrimSpace(title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(category) == "" {
		missing = append(missing, "category")
	}
	if supervisorID == 0 {
		missing = append(missing, "supervisor")
	}
	if len(missing) > 0 {
		return validationErr("missing required fields: %s", strings.Join(missing, ", "))
	}
	if !catalog.AllowsCategory(category) {
		return validationErr("unknown category %q", category)
	}
	return nil
}

// refsToAttachments resolves document references sent to the project
// endpoints the same way submission slots are resolved.
func refsToAttachments(repos *repository.Repos, actor types.Actor, refs []project.AttachmentRef, current *project.Project) ([]project.Attachment, error) {
	if len(refs) > project.MaxAttachmentSlots {
		return nil, validationErr("at most %d attachments are allowed", project.MaxAttachmentSlots)
	}
	slots := make([]submission.Slot, 0, len(refs))
	for i := range refs {
		ref := refs[i]
		ref.URL = strings.TrimSpace(ref.URL)
		slots = append(slots, submission.Slot{Retained: &ref})
	}
	claimed, err := claimRetained(repos, actor, slots, current)
	if err != nil {
		return nil, err
	}
	out := make([]project.Attachment, 0, len(claimed))
	for i, a := range claimed {
		if a == nil {
			continue
		}
		att := *a
		att.ID = 0
		att.Slot = i + 1
		out = append(out, att)
	}
	return out, nil
}
