package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/linskybing/fyp-portal/internal/domain/access"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/internal/notify"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/pkg/types"
	"gorm.io/gorm"
)

type AccessRequestService struct {
	Repos    *repository.Repos
	Notifier notify.Notifier
	Activity *ActivityHub

	now func() time.Time
}

func NewAccessRequestService(repos *repository.Repos, notifier notify.Notifier, hub *ActivityHub) *AccessRequestService {
	return &AccessRequestService{
		Repos:    repos,
		Notifier: notifier,
		Activity: hub,
		now:      time.Now,
	}
}

// Request opens a Pending request for a student to see a project's artifacts.
func (s *AccessRequestService) Request(ctx context.Context, actor types.Actor, projectID uint, reason string) (*access.Request, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, validationErr("reason is required")
	}
	if actor.Role != user.RoleStudent {
		return nil, validationErr("only students can request project access")
	}
	if projectID == 0 {
		return nil, validationErr("project_id is required")
	}

	var created access.Request
	var entry *audit.AuditLog
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		p, err := tx.Project.GetProjectByID(projectID)
		if err != nil {
			return translate(err, "project")
		}
		// proposals under review stay hidden from other students
		if p.Status != project.StatusActive && p.OwnerID != actor.UserID {
			return notFoundErr("project")
		}

		if _, err := tx.AccessRequest.FindPending(actor.UserID, projectID); err == nil {
			return duplicateRequestErr(nil)
		} else if !isNotFound(err) {
			return translate(err, "access request")
		}

		req := &access.Request{
			StudentID:   actor.UserID,
			ProjectID:   projectID,
			Reason:      reason,
			Status:      access.StatusPending,
			RequestedAt: s.now(),
		}
		if err := tx.AccessRequest.CreateRequest(req); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return duplicateRequestErr(err)
			}
			return translate(err, "access request")
		}

		entry, err = recordTx(tx, actor, audit.ActionRequest, audit.ResourceAccessRequest, req.ID, nil, req,
			fmt.Sprintf("requested access to %q", p.Title))
		if err != nil {
			return err
		}
		created = *req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Activity.Publish(entry)
	return &created, nil
}

// Review approves or rejects a Pending request.
func (s *AccessRequestService) Review(ctx context.Context, actor types.Actor, id uint, rawDecision, response string) (*access.Request, error) {
	decision, ok := access.ParseDecision(rawDecision)
	if !ok {
		return nil, validationErr("decision must be Approve or Reject")
	}
	if !actor.Role.IsStaff() {
		return nil, forbiddenErr("only supervisors can review access requests")
	}
	response = strings.TrimSpace(response)

	var updated access.Request
	var title string
	var entry *audit.AuditLog
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		req, err := tx.AccessRequest.GetRequestByID(id)
		if err != nil {
			return translate(err, "access request")
		}
		p, err := tx.Project.GetProjectByID(req.ProjectID)
		if err != nil {
			return translate(err, "project")
		}
		if !actor.IsAdmin() && p.SupervisorID != actor.UserID {
			return forbiddenErr("you do not supervise this project")
		}
		target := decision.Target()
		if !req.Status.CanTransitionTo(target) {
			return conflictErr(fmt.Sprintf("access request is already %s", req.Status), nil)
		}

		var resp *string
		if response != "" {
			resp = &response
		}
		now := s.now()
		if err := tx.AccessRequest.TransitionStatus(req.ID, req.Status, target, resp, now); err != nil {
			return translate(err, "access request")
		}

		before := req.Status
		req.Status = target
		req.ReviewedAt = &now
		if resp != nil {
			req.SupervisorResponse = resp
		}

		entry, err = recordTx(tx, actor, audit.ActionReview, audit.ResourceAccessRequest, req.ID,
			map[string]any{"status": before},
			map[string]any{"status": target, "supervisor_response": response},
			fmt.Sprintf("%s access to %q for student %d", strings.ToLower(string(target)), p.Title, req.StudentID))
		if err != nil {
			return err
		}
		updated = req
		title = p.Title
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Activity.Publish(entry)
	s.notifyStudent(ctx, updated, title)
	return &updated, nil
}

// Cancel withdraws a Pending request. Only its student may cancel it.
func (s *AccessRequestService) Cancel(ctx context.Context, actor types.Actor, id uint) error {
	var entry *audit.AuditLog
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		req, err := tx.AccessRequest.GetRequestByID(id)
		if err != nil {
			return translate(err, "access request")
		}
		if req.StudentID != actor.UserID {
			return forbiddenErr("only the requesting student can cancel this request")
		}
		if req.Status != access.StatusPending {
			return conflictErr(fmt.Sprintf("access request is already %s", req.Status), nil)
		}
		if err := tx.AccessRequest.DeletePending(req.ID); err != nil {
			return translate(err, "access request")
		}
		entry, err = recordTx(tx, actor, audit.ActionCancel, audit.ResourceAccessRequest, req.ID, req, nil, "cancelled access request")
		return err
	})
	if err != nil {
		return err
	}
	s.Activity.Publish(entry)
	return nil
}

func (s *AccessRequestService) ListForStudent(actor types.Actor, studentID uint) ([]access.WithProject, error) {
	if !actor.IsAdmin() && actor.UserID != studentID {
		return nil, forbiddenErr("you can only list your own requests")
	}
	reqs, err := s.Repos.AccessRequest.ListByStudent(studentID)
	if err != nil {
		return nil, translate(err, "access request")
	}
	if reqs == nil {
		reqs = []access.WithProject{}
	}
	return reqs, nil
}

func (s *AccessRequestService) ListForSupervisor(actor types.Actor, supervisorID uint) ([]access.WithProject, error) {
	if !actor.IsAdmin() && (actor.Role != user.RoleSupervisor || actor.UserID != supervisorID) {
		return nil, forbiddenErr("you can only list requests for your own projects")
	}
	reqs, err := s.Repos.AccessRequest.ListBySupervisor(supervisorID)
	if err != nil {
		return nil, translate(err, "access request")
	}
	if reqs == nil {
		reqs = []access.WithProject{}
	}
	return reqs, nil
}

func (s *AccessRequestService) notifyStudent(ctx context.Context, req access.Request, projectTitle string) {
	student, err := s.Repos.User.GetUserByID(req.StudentID)
	if err != nil {
		log.Printf("[notify] access request %d: load student %d: %v", req.ID, req.StudentID, err)
		return
	}
	var response string
	if req.SupervisorResponse != nil {
		response = *req.SupervisorResponse
	}
	msg := notify.AccessRequestReviewed(student.Email, student.Name, projectTitle, string(req.Status), response)
	if err := s.Notifier.Send(ctx, msg); err != nil {
		log.Printf("[notify] access request %d: %v", req.ID, err)
	}
}
