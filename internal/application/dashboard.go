package application

import (
	"github.com/linskybing/fyp-portal/internal/domain/access"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/dashboard"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/pkg/types"
)

const (
	recentProjectsLimit = 3
	recentActivityLimit = 10
)

// DashboardService assembles per-role summaries. Nothing is cached.
type DashboardService struct {
	Repos *repository.Repos
}

func NewDashboardService(repos *repository.Repos) *DashboardService {
	return &DashboardService{Repos: repos}
}

func (s *DashboardService) For(actor types.Actor) (any, error) {
	switch actor.Role {
	case user.RoleStudent:
		return s.Student(actor.UserID)
	case user.RoleSupervisor:
		return s.Supervisor(actor.UserID)
	case user.RoleAdmin:
		return s.Admin()
	}
	return nil, forbiddenErr("unknown role")
}

func (s *DashboardService) Student(studentID uint) (*dashboard.Student, error) {
	reqs, err := s.Repos.AccessRequest.ListByStudent(studentID)
	if err != nil {
		return nil, translate(err, "access request")
	}

	out := &dashboard.Student{Role: user.RoleStudent, TotalRequests: len(reqs)}
	seen := map[uint]struct{}{}
	var approvedIDs []uint
	for _, r := range reqs {
		switch r.Status {
		case access.StatusApproved:
			out.ApprovedRequests++
			if _, ok := seen[r.ProjectID]; !ok {
				seen[r.ProjectID] = struct{}{}
				approvedIDs = append(approvedIDs, r.ProjectID)
			}
		case access.StatusPending:
			out.PendingRequests++
		}
	}

	out.ApprovedProjects = []project.Project{}
	if len(approvedIDs) > 0 {
		projects, err := s.Repos.Project.ListProjectsByIDs(approvedIDs)
		if err != nil {
			return nil, translate(err, "project")
		}
		out.ApprovedProjects = projects
	}

	latest, err := s.Repos.Submission.GetLatestByStudent(studentID)
	switch {
	case err == nil:
		out.Submission = &latest
	case !isNotFound(err):
		return nil, translate(err, "submission")
	}
	out.Actions = dashboard.ActionsFor(out.Submission)
	return out, nil
}

func (s *DashboardService) Supervisor(supervisorID uint) (*dashboard.Supervisor, error) {
	count, err := s.Repos.Project.CountBySupervisor(supervisorID)
	if err != nil {
		return nil, translate(err, "project")
	}
	reqs, err := s.Repos.AccessRequest.ListBySupervisor(supervisorID)
	if err != nil {
		return nil, translate(err, "access request")
	}
	pending := submission.StatusPending
	subs, err := s.Repos.Submission.ListSubmissions(submission.ListFilter{SupervisorID: &supervisorID, Status: &pending})
	if err != nil {
		return nil, translate(err, "submission")
	}
	recent, err := s.Repos.Project.ListProjects(project.ListFilter{SupervisorID: &supervisorID, Limit: recentProjectsLimit})
	if err != nil {
		return nil, translate(err, "project")
	}

	out := &dashboard.Supervisor{
		Role:               user.RoleSupervisor,
		ProjectsSupervised: int(count),
		PendingRequests:    []access.WithProject{},
		RequestHistory:     []access.WithProject{},
		PendingSubmissions: subs,
		RecentProjects:     recent,
	}
	for _, r := range reqs {
		if r.Status == access.StatusPending {
			out.PendingRequests = append(out.PendingRequests, r)
		} else {
			out.RequestHistory = append(out.RequestHistory, r)
		}
	}
	if out.PendingSubmissions == nil {
		out.PendingSubmissions = []submission.Submission{}
	}
	if out.RecentProjects == nil {
		out.RecentProjects = []project.Project{}
	}
	return out, nil
}

func (s *DashboardService) Admin() (*dashboard.Admin, error) {
	users, err := s.Repos.User.CountByRole()
	if err != nil {
		return nil, translate(err, "user")
	}
	inactive, err := s.Repos.User.CountInactive()
	if err != nil {
		return nil, translate(err, "user")
	}
	projects, err := s.Repos.Project.CountByStatus()
	if err != nil {
		return nil, translate(err, "project")
	}
	requests, err := s.Repos.AccessRequest.CountByStatus()
	if err != nil {
		return nil, translate(err, "access request")
	}
	subs, err := s.Repos.Submission.CountByStatus()
	if err != nil {
		return nil, translate(err, "submission")
	}
	activity, err := s.Repos.Audit.GetAuditLogs(repository.AuditQueryParams{Limit: recentActivityLimit})
	if err != nil {
		return nil, translate(err, "audit log")
	}

	out := &dashboard.Admin{
		Role:           user.RoleAdmin,
		Users:          map[user.Role]int64{user.RoleStudent: 0, user.RoleSupervisor: 0, user.RoleAdmin: 0},
		InactiveUsers:  inactive,
		Projects:       map[project.Status]int64{project.StatusPending: 0, project.StatusActive: 0},
		AccessRequests: map[access.Status]int64{access.StatusPending: 0, access.StatusApproved: 0, access.StatusRejected: 0},
		Submissions: map[submission.Status]int64{
			submission.StatusPending:          0,
			submission.StatusApproved:         0,
			submission.StatusRejected:         0,
			submission.StatusChangesRequested: 0,
		},
		RecentActivity: activity,
	}
	for role, n := range users {
		out.Users[role] = n
		out.TotalUsers += n
	}
	for st, n := range projects {
		out.Projects[st] = n
	}
	for st, n := range requests {
		out.AccessRequests[st] = n
	}
	for st, n := range subs {
		out.Submissions[st] = n
	}
	if out.RecentActivity == nil {
		out.RecentActivity = []audit.AuditLog{}
	}
	return out, nil
}
