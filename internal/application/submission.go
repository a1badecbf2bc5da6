package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/dashboard"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/linskybing/fyp-portal/internal/domain/tag"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/internal/notify"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/internal/storage"
	"github.com/linskybing/fyp-portal/pkg/types"
	"gorm.io/gorm"
)

var errActiveSubmission = errors.New("you already have an active submission")

type SubmissionService struct {
	Repos    *repository.Repos
	Store    storage.ObjectStore
	Notifier notify.Notifier
	Activity *ActivityHub
	Catalog  *config.SeedCatalog

	now func() time.Time
}

func NewSubmissionService(repos *repository.Repos, store storage.ObjectStore, notifier notify.Notifier, hub *ActivityHub, catalog *config.SeedCatalog) *SubmissionService {
	return &SubmissionService{
		Repos:    repos,
		Store:    store,
		Notifier: notifier,
		Activity: hub,
		Catalog:  catalog,
		now:      time.Now,
	}
}

// Create records a student's proposal: a Pending project plus its Pending submission.
func (s *SubmissionService) Create(ctx context.Context, actor types.Actor, draft submission.Draft) (*submission.Submission, error) {
	if actor.Role != user.RoleStudent {
		return nil, forbiddenErr("only students can submit projects")
	}
	if err := checkProjectFields(s.Catalog, draft.Title, draft.Description, draft.Category, draft.SupervisorID); err != nil {
		return nil, err
	}
	if err := checkSlots(draft.Slots); err != nil {
		return nil, err
	}
	if err := requireSupervisor(s.Repos, draft.SupervisorID); err != nil {
		return nil, err
	}
	claimed, err := claimRetained(s.Repos, actor, draft.Slots, nil)
	if err != nil {
		return nil, err
	}

	attachments, fresh, err := resolveAttachments(ctx, s.Store, draft.Slots, claimed)
	if err != nil {
		return nil, err
	}

	var created submission.Submission
	var entry *audit.AuditLog
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if _, err := tx.Submission.GetActiveByStudent(actor.UserID); err == nil {
			return conflictErr(errActiveSubmission.Error(), errActiveSubmission)
		} else if !isNotFound(err) {
			return translate(err, "submission")
		}

		tags, err := tx.Tag.FindOrCreateByNames(tag.NormalizeAll(draft.Tags))
		if err != nil {
			return translate(err, "tag")
		}

		p := &project.Project{
			Title:        strings.TrimSpace(draft.Title),
			Description:  strings.TrimSpace(draft.Description),
			Category:     strings.TrimSpace(draft.Category),
			AcademicYear: strings.TrimSpace(draft.AcademicYear),
			SupervisorID: draft.SupervisorID,
			OwnerID:      actor.UserID,
			StudentNames: cleanNames(draft.StudentNames),
			Status:       project.StatusPending,
			Tags:         tags,
			Attachments:  attachments,
		}
		if err := tx.Project.CreateProject(p); err != nil {
			return translate(err, "project")
		}

		sub := &submission.Submission{
			StudentID:   actor.UserID,
			ProjectID:   p.ID,
			Status:      submission.StatusPending,
			ReviewRound: 1,
			RequestedAt: s.now(),
		}
		if err := tx.Submission.CreateSubmission(sub); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictErr(errActiveSubmission.Error(), err)
			}
			return translate(err, "submission")
		}

		entry, err = recordTx(tx, actor, audit.ActionSubmit, audit.ResourceSubmission, sub.ID, nil, sub,
			fmt.Sprintf("submitted project %q", p.Title))
		if err != nil {
			return err
		}

		sub.Project = p
		created = *sub
		return nil
	})
	if err != nil {
		return nil, discardUploads(ctx, s.Store, fresh, err)
	}

	s.Activity.Publish(entry)
	log.Printf("[submission] %d created by student %d", created.ID, actor.UserID)
	return &created, nil
}

// Review applies a supervisor decision to a Pending submission.
func (s *SubmissionService) Review(ctx context.Context, actor types.Actor, id uint, rawDecision, response string, grade *string) (*submission.Submission, error) {
	decision, ok := submission.ParseDecision(rawDecision)
	if !ok {
		return nil, validationErr("decision must be one of Approve, RequestChanges, Reject")
	}
	response = strings.TrimSpace(response)
	var gradeValue string
	if grade != nil {
		gradeValue = strings.TrimSpace(*grade)
	}
	switch decision {
	case submission.DecisionApprove:
		if gradeValue == "" {
			return nil, validationErr("grade required")
		}
	default:
		if response == "" {
			return nil, validationErr("response text required")
		}
	}
	if !actor.Role.IsStaff() {
		return nil, forbiddenErr("only supervisors can review submissions")
	}

	target := decision.Target()
	var updated submission.Submission
	var entry *audit.AuditLog
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		sub, err := tx.Submission.GetSubmissionByID(id)
		if err != nil {
			return translate(err, "submission")
		}
		if sub.Project == nil {
			return notFoundErr("project")
		}
		if !actor.IsAdmin() && sub.Project.SupervisorID != actor.UserID {
			return forbiddenErr("you do not supervise this project")
		}
		if !sub.Status.CanTransitionTo(target) {
			return conflictErr(fmt.Sprintf("submission is %s, only Pending submissions can be reviewed", sub.Status), nil)
		}

		before := sub.Status
		now := s.now()
		t := submission.Transition{
			ID:         sub.ID,
			From:       sub.Status,
			To:         target,
			ReviewedAt: &now,
		}
		if response != "" {
			t.SupervisorResponse = &response
		}
		if decision == submission.DecisionApprove {
			t.Grade = &gradeValue
		}
		if err := tx.Submission.TransitionStatus(t); err != nil {
			return translate(err, "submission")
		}

		review := &submission.Review{
			SubmissionID: sub.ID,
			Round:        sub.ReviewRound,
			Decision:     target,
			Response:     response,
			Grade:        t.Grade,
			ReviewerID:   actor.UserID,
			ReviewedAt:   now,
		}
		if err := tx.Submission.CreateReview(review); err != nil {
			return translate(err, "submission review")
		}

		if decision == submission.DecisionApprove {
			if err := tx.Project.ActivateProject(sub.ProjectID, gradeValue); err != nil {
				return translate(err, "project")
			}
			sub.Project.Status = project.StatusActive
			sub.Project.Grade = &gradeValue
			sub.Grade = &gradeValue
		}
		sub.Status = target
		sub.ReviewedAt = &now
		if t.SupervisorResponse != nil {
			sub.SupervisorResponse = t.SupervisorResponse
		}
		sub.Reviews = append(sub.Reviews, *review)

		entry, err = recordTx(tx, actor, audit.ActionReview, audit.ResourceSubmission, sub.ID,
			map[string]any{"status": before},
			map[string]any{"status": target, "supervisor_response": response, "grade": t.Grade},
			fmt.Sprintf("%s submission for %q", decision, sub.Project.Title))
		if err != nil {
			return err
		}
		updated = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Activity.Publish(entry)
	s.notifyStudent(ctx, updated)
	return &updated, nil
}

// Resubmit revises a project after changes were requested and returns
// the submission to Pending. Earlier feedback is kept.
func (s *SubmissionService) Resubmit(ctx context.Context, actor types.Actor, id uint, update submission.Update) (*submission.Submission, error) {
	if actor.Role != user.RoleStudent {
		return nil, forbiddenErr("only the submitting student can resubmit")
	}
	if len(update.Slots) > project.MaxAttachmentSlots {
		return nil, validationErr("at most %d attachments are allowed", project.MaxAttachmentSlots)
	}
	for field, v := range map[string]*string{"title": update.Title, "description": update.Description, "category": update.Category} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return nil, validationErr("%s cannot be empty", field)
		}
	}
	if update.Category != nil && !s.Catalog.AllowsCategory(*update.Category) {
		return nil, validationErr("unknown category %q", *update.Category)
	}

	sub, err := s.Repos.Submission.GetSubmissionByID(id)
	if err != nil {
		return nil, translate(err, "submission")
	}
	if sub.StudentID != actor.UserID {
		return nil, forbiddenErr("only the submitting student can resubmit")
	}
	if sub.Status != submission.StatusChangesRequested {
		return nil, conflictErr(fmt.Sprintf("submission is %s, only submissions with changes requested can be resubmitted", sub.Status), nil)
	}
	if sub.Project == nil {
		return nil, notFoundErr("project")
	}

	current := *sub.Project
	merged := current
	merged.Supervisor = nil
	applyUpdate(&merged, update)
	if err := checkProjectFields(s.Catalog, merged.Title, merged.Description, merged.Category, merged.SupervisorID); err != nil {
		return nil, err
	}
	if merged.SupervisorID != current.SupervisorID {
		if err := requireSupervisor(s.Repos, merged.SupervisorID); err != nil {
			return nil, err
		}
	}

	attachments := current.Attachments
	var fresh []string
	if update.Slots != nil {
		if err := checkSlots(update.Slots); err != nil {
			return nil, err
		}
		claimed, err := claimRetained(s.Repos, actor, update.Slots, &current)
		if err != nil {
			return nil, err
		}
		attachments, fresh, err = resolveAttachments(ctx, s.Store, update.Slots, claimed)
		if err != nil {
			return nil, err
		}
	} else if len(attachments) == 0 {
		return nil, validationErr("at least one attachment is required")
	}
	merged.Attachments = attachments

	now := s.now()
	var entry *audit.AuditLog
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if update.Tags != nil {
			tags, err := tx.Tag.FindOrCreateByNames(tag.NormalizeAll(update.Tags))
			if err != nil {
				return translate(err, "tag")
			}
			merged.Tags = tags
		}
		if err := tx.Project.UpdateProject(&merged); err != nil {
			return translate(err, "project")
		}
		if err := tx.Submission.TransitionStatus(submission.Transition{
			ID:              sub.ID,
			From:            submission.StatusChangesRequested,
			To:              submission.StatusPending,
			RequestedAt:     &now,
			ClearReviewedAt: true,
			BumpRound:       true,
		}); err != nil {
			return translate(err, "submission")
		}

		var err error
		entry, err = recordTx(tx, actor, audit.ActionResubmit, audit.ResourceSubmission, sub.ID, current, merged,
			fmt.Sprintf("resubmitted project %q (round %d)", merged.Title, sub.ReviewRound+1))
		return err
	})
	if err != nil {
		return nil, discardUploads(ctx, s.Store, fresh, err)
	}

	if update.Slots != nil {
		removeArtifacts(ctx, s.Store, s.Repos.Project, droppedAttachments(current.Attachments, merged.Attachments))
	}
	s.Activity.Publish(entry)

	sub.Status = submission.StatusPending
	sub.ReviewRound++
	sub.ReviewedAt = nil
	sub.RequestedAt = now
	sub.Project = &merged
	return &sub, nil
}

// Get returns a submission with its review history to its student, the
// project's supervisor, or an admin.
func (s *SubmissionService) Get(actor types.Actor, id uint) (*submission.Submission, error) {
	sub, err := s.Repos.Submission.GetSubmissionByID(id)
	if err != nil {
		return nil, translate(err, "submission")
	}
	if !canSeeSubmission(actor, sub) {
		return nil, forbiddenErr("you cannot view this submission")
	}
	return &sub, nil
}

func (s *SubmissionService) List(actor types.Actor, status *submission.Status) ([]submission.Submission, error) {
	filter := submission.ListFilter{Status: status}
	switch actor.Role {
	case user.RoleAdmin:
	case user.RoleSupervisor:
		filter.SupervisorID = &actor.UserID
	default:
		filter.StudentID = &actor.UserID
	}
	subs, err := s.Repos.Submission.ListSubmissions(filter)
	if err != nil {
		return nil, translate(err, "submission")
	}
	if subs == nil {
		subs = []submission.Submission{}
	}
	return subs, nil
}

// StudentStatus reports a student's latest submission and what they can do next.
func (s *SubmissionService) StudentStatus(actor types.Actor, studentID uint) (*submission.StudentStatus, error) {
	if actor.Role == user.RoleStudent && actor.UserID != studentID {
		return nil, forbiddenErr("you can only view your own submission")
	}
	latest, err := s.latestFor(studentID)
	if err != nil {
		return nil, err
	}
	return &submission.StudentStatus{
		Submission: latest,
		Actions:    dashboard.ActionsFor(latest),
	}, nil
}

func (s *SubmissionService) ListSupervisors() ([]user.User, error) {
	users, err := s.Repos.User.ListSupervisors()
	if err != nil {
		return nil, translate(err, "supervisor")
	}
	if users == nil {
		users = []user.User{}
	}
	return users, nil
}

func (s *SubmissionService) latestFor(studentID uint) (*submission.Submission, error) {
	latest, err := s.Repos.Submission.GetLatestByStudent(studentID)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err, "submission")
	}
	return &latest, nil
}

func (s *SubmissionService) notifyStudent(ctx context.Context, sub submission.Submission) {
	student, err := s.Repos.User.GetUserByID(sub.StudentID)
	if err != nil {
		log.Printf("[notify] submission %d: load student %d: %v", sub.ID, sub.StudentID, err)
		return
	}
	var response string
	if sub.SupervisorResponse != nil {
		response = *sub.SupervisorResponse
	}
	msg := notify.SubmissionReviewed(student.Email, student.Name, sub.Project.Title, string(sub.Status), response, sub.Grade)
	if err := s.Notifier.Send(ctx, msg); err != nil {
		log.Printf("[notify] submission %d: %v", sub.ID, err)
	}
}

func canSeeSubmission(actor types.Actor, sub submission.Submission) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleSupervisor:
		return sub.Project != nil && sub.Project.SupervisorID == actor.UserID
	default:
		return sub.StudentID == actor.UserID
	}
}

// requireSupervisor checks that id names an active supervisor account.
func requireSupervisor(repos *repository.Repos, id uint) error {
	u, err := repos.User.GetUserByID(id)
	if isNotFound(err) {
		return validationErr("supervisor %d does not exist", id)
	}
	if err != nil {
		return translate(err, "supervisor")
	}
	if u.Role != user.RoleSupervisor {
		return validationErr("user %d is not a supervisor", id)
	}
	if !u.Active {
		return validationErr("supervisor %d is inactive", id)
	}
	return nil
}

func applyUpdate(p *project.Project, u submission.Update) {
	if u.Title != nil {
		p.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		p.Description = strings.TrimSpace(*u.Description)
	}
	if u.Category != nil {
		p.Category = strings.TrimSpace(*u.Category)
	}
	if u.AcademicYear != nil {
		p.AcademicYear = strings.TrimSpace(*u.AcademicYear)
	}
	if u.SupervisorID != nil {
		p.SupervisorID = *u.SupervisorID
	}
	if u.StudentNames != nil {
		p.StudentNames = cleanNames(u.StudentNames)
	}
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
