package application

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/access"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
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

// fakeStore keeps every table in memory and enforces the same guards as
// the postgres schema: unique emails and tag names, one Pending access
// request per pair, one non-Rejected submission per student, one project
// per stored object, and conditional status updates.
type fakeStore struct {
	mu sync.Mutex

	nextID      uint
	users       map[uint]user.User
	tags        map[uint]tag.Tag
	projects    map[uint]project.Project
	submissions map[uint]submission.Submission
	reviews     []submission.Review
	requests    map[uint]access.Request
	audits      []audit.AuditLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       map[uint]user.User{},
		tags:        map[uint]tag.Tag{},
		projects:    map[uint]project.Project{},
		submissions: map[uint]submission.Submission{},
		requests:    map[uint]access.Request{},
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) repos() *repository.Repos {
	return &repository.Repos{
		User:          fakeUserRepo{f},
		Tag:           fakeTagRepo{f},
		Project:       fakeProjectRepo{f},
		Submission:    fakeSubmissionRepo{f},
		AccessRequest: fakeAccessRepo{f},
		Audit:         fakeAuditRepo{f},
	}
}

func (f *fakeStore) addUser(role user.Role, email string) user.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := user.User{ID: f.id(), Role: role, Email: email, Name: strings.Split(email, "@")[0], Active: true}
	f.users[u.ID] = u
	return u
}

func (f *fakeStore) addProject(p project.Project) project.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = f.id()
	if p.Status == "" {
		p.Status = project.StatusActive
	}
	f.projects[p.ID] = p
	return p
}

func (f *fakeStore) submission(id uint) submission.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submissions[id]
}

func (f *fakeStore) auditActions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.audits))
	for _, a := range f.audits {
		out = append(out, a.Action)
	}
	return out
}

// ---- users ----

type fakeUserRepo struct{ f *fakeStore }

func (r fakeUserRepo) CreateUser(u *user.User) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, existing := range r.f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = r.f.id()
	r.f.users[u.ID] = *u
	return nil
}

func (r fakeUserRepo) GetUserByID(id uint) (user.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	u, ok := r.f.users[id]
	if !ok {
		return user.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r fakeUserRepo) GetUserByEmail(email string) (user.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, u := range r.f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, gorm.ErrRecordNotFound
}

func (r fakeUserRepo) ListUsers(filter user.ListFilter) ([]user.User, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []user.User
	for _, u := range r.f.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(u.Name+" "+u.Email), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r fakeUserRepo) ListSupervisors() ([]user.User, error) {
	role := user.RoleSupervisor
	all, _ := r.ListUsers(user.ListFilter{Role: &role})
	var out []user.User
	for _, u := range all {
		if u.Active {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r fakeUserRepo) UpdateUser(u *user.User) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	r.f.users[u.ID] = *u
	return nil
}

func (r fakeUserRepo) CountByRole() (map[user.Role]int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	out := map[user.Role]int64{}
	for _, u := range r.f.users {
		out[u.Role]++
	}
	return out, nil
}

func (r fakeUserRepo) CountInactive() (int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var n int64
	for _, u := range r.f.users {
		if !u.Active {
			n++
		}
	}
	return n, nil
}

func (r fakeUserRepo) WithTx(*gorm.DB) repository.UserRepo { return r }

// ---- tags ----

type fakeTagRepo struct{ f *fakeStore }

func (r fakeTagRepo) ListTags() ([]tag.Tag, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	out := make([]tag.Tag, 0, len(r.f.tags))
	for _, t := range r.f.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r fakeTagRepo) GetTagByID(id uint) (tag.Tag, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	t, ok := r.f.tags[id]
	if !ok {
		return tag.Tag{}, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r fakeTagRepo) nameTaken(name string, except uint) bool {
	for _, t := range r.f.tags {
		if t.Name == name && t.ID != except {
			return true
		}
	}
	return false
}

func (r fakeTagRepo) CreateTag(t *tag.Tag) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.nameTaken(t.Name, 0) {
		return gorm.ErrDuplicatedKey
	}
	t.ID = r.f.id()
	r.f.tags[t.ID] = *t
	return nil
}

func (r fakeTagRepo) UpdateTag(t *tag.Tag) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.nameTaken(t.Name, t.ID) {
		return gorm.ErrDuplicatedKey
	}
	r.f.tags[t.ID] = *t
	return nil
}

func (r fakeTagRepo) DeleteTag(id uint) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if _, ok := r.f.tags[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.f.tags, id)
	return nil
}

func (r fakeTagRepo) FindOrCreateByNames(names []string) ([]tag.Tag, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	out := make([]tag.Tag, 0, len(names))
	for _, n := range names {
		found := false
		for _, t := range r.f.tags {
			if t.Name == n {
				out = append(out, t)
				found = true
				break
			}
		}
		if !found {
			t := tag.Tag{ID: r.f.id(), Name: n}
			r.f.tags[t.ID] = t
			out = append(out, t)
		}
	}
	return out, nil
}

func (r fakeTagRepo) WithTx(*gorm.DB) repository.TagRepo { return r }

// ---- projects ----

type fakeProjectRepo struct{ f *fakeStore }

func (r fakeProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	p, ok := r.f.projects[id]
	if !ok {
		return project.Project{}, gorm.ErrRecordNotFound
	}
	return cloneProject(p), nil
}

// objectTaken mirrors idx_project_attachments_public_id.
func (r fakeProjectRepo) objectTaken(attachments []project.Attachment, except uint) bool {
	for id, p := range r.f.projects {
		if id == except {
			continue
		}
		for _, a := range p.Attachments {
			for _, b := range attachments {
				if a.PublicID != "" && a.PublicID == b.PublicID {
					return true
				}
			}
		}
	}
	return false
}

func (r fakeProjectRepo) CreateProject(p *project.Project) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if r.objectTaken(p.Attachments, 0) {
		return gorm.ErrDuplicatedKey
	}
	p.ID = r.f.id()
	p.CreatedAt = time.Now()
	for i := range p.Attachments {
		p.Attachments[i].ID = r.f.id()
		p.Attachments[i].ProjectID = p.ID
	}
	r.f.projects[p.ID] = cloneProject(*p)
	return nil
}

func (r fakeProjectRepo) UpdateProject(p *project.Project) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if _, ok := r.f.projects[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if r.objectTaken(p.Attachments, p.ID) {
		return gorm.ErrDuplicatedKey
	}
	r.f.projects[p.ID] = cloneProject(*p)
	return nil
}

func (r fakeProjectRepo) ActivateProject(id uint, grade string) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	p, ok := r.f.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = project.StatusActive
	p.Grade = &grade
	r.f.projects[id] = p
	return nil
}

func (r fakeProjectRepo) DeleteProject(id uint) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	if _, ok := r.f.projects[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.f.projects, id)
	for sid, s := range r.f.submissions {
		if s.ProjectID == id {
			delete(r.f.submissions, sid)
		}
	}
	for rid, req := range r.f.requests {
		if req.ProjectID == id {
			delete(r.f.requests, rid)
		}
	}
	return nil
}

func (r fakeProjectRepo) ListProjects(filter project.ListFilter) ([]project.Project, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []project.Project
	for _, p := range r.f.projects {
		if filter.SupervisorID != nil && p.SupervisorID != *filter.SupervisorID {
			continue
		}
		if filter.OwnerID != nil && p.OwnerID != *filter.OwnerID {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.AcademicYear != "" && p.AcademicYear != filter.AcademicYear {
			continue
		}
		if filter.Tag != "" && !containsString(p.TagNames(), tag.Normalize(filter.Tag)) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Title+" "+p.Description), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, cloneProject(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r fakeProjectRepo) ListProjectsByIDs(ids []uint) ([]project.Project, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []project.Project
	for _, id := range ids {
		if p, ok := r.f.projects[id]; ok {
			out = append(out, cloneProject(p))
		}
	}
	return out, nil
}

func (r fakeProjectRepo) CountBySupervisor(supervisorID uint) (int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var n int64
	for _, p := range r.f.projects {
		if p.SupervisorID == supervisorID {
			n++
		}
	}
	return n, nil
}

func (r fakeProjectRepo) CountAttachmentsByPublicID(publicID string) (int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var n int64
	for _, p := range r.f.projects {
		for _, a := range p.Attachments {
			if a.PublicID == publicID {
				n++
			}
		}
	}
	return n, nil
}

func (r fakeProjectRepo) CountByStatus() (map[project.Status]int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	out := map[project.Status]int64{}
	for _, p := range r.f.projects {
		out[p.Status]++
	}
	return out, nil
}

func (r fakeProjectRepo) WithTx(*gorm.DB) repository.ProjectRepo { return r }

func cloneProject(p project.Project) project.Project {
	p.Tags = append([]tag.Tag(nil), p.Tags...)
	p.Attachments = append([]project.Attachment(nil), p.Attachments...)
	p.StudentNames = append([]string(nil), p.StudentNames...)
	return p
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ---- submissions ----

type fakeSubmissionRepo struct{ f *fakeStore }

func (r fakeSubmissionRepo) CreateSubmission(s *submission.Submission) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, existing := range r.f.submissions {
		if existing.StudentID == s.StudentID && existing.Status != submission.StatusRejected {
			return gorm.ErrDuplicatedKey
		}
	}
	s.ID = r.f.id()
	stored := *s
	stored.Project = nil
	stored.Reviews = nil
	r.f.submissions[s.ID] = stored
	return nil
}

func (r fakeSubmissionRepo) load(s submission.Submission) submission.Submission {
	if p, ok := r.f.projects[s.ProjectID]; ok {
		cp := cloneProject(p)
		s.Project = &cp
	}
	s.Reviews = nil
	for _, rv := range r.f.reviews {
		if rv.SubmissionID == s.ID {
			s.Reviews = append(s.Reviews, rv)
		}
	}
	return s
}

func (r fakeSubmissionRepo) GetSubmissionByID(id uint) (submission.Submission, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	s, ok := r.f.submissions[id]
	if !ok {
		return submission.Submission{}, gorm.ErrRecordNotFound
	}
	return r.load(s), nil
}

func (r fakeSubmissionRepo) GetActiveByStudent(studentID uint) (submission.Submission, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, s := range r.f.submissions {
		if s.StudentID == studentID && s.Status != submission.StatusRejected {
			return r.load(s), nil
		}
	}
	return submission.Submission{}, gorm.ErrRecordNotFound
}

func (r fakeSubmissionRepo) GetLatestByStudent(studentID uint) (submission.Submission, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var latest *submission.Submission
	for _, s := range r.f.submissions {
		if s.StudentID != studentID {
			continue
		}
		if latest == nil || s.ID > latest.ID {
			s := s
			latest = &s
		}
	}
	if latest == nil {
		return submission.Submission{}, gorm.ErrRecordNotFound
	}
	return r.load(*latest), nil
}

func (r fakeSubmissionRepo) ListSubmissions(filter submission.ListFilter) ([]submission.Submission, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []submission.Submission
	for _, s := range r.f.submissions {
		if filter.StudentID != nil && s.StudentID != *filter.StudentID {
			continue
		}
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		if filter.SupervisorID != nil && r.f.projects[s.ProjectID].SupervisorID != *filter.SupervisorID {
			continue
		}
		out = append(out, r.load(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r fakeSubmissionRepo) TransitionStatus(t submission.Transition) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	s, ok := r.f.submissions[t.ID]
	if !ok || s.Status != t.From {
		return repository.ErrStateChanged
	}
	s.Status = t.To
	if t.SupervisorResponse != nil {
		s.SupervisorResponse = t.SupervisorResponse
	}
	if t.Grade != nil {
		s.Grade = t.Grade
	}
	if t.ReviewedAt != nil {
		s.ReviewedAt = t.ReviewedAt
	}
	if t.ClearReviewedAt {
		s.ReviewedAt = nil
	}
	if t.RequestedAt != nil {
		s.RequestedAt = *t.RequestedAt
	}
	if t.BumpRound {
		s.ReviewRound++
	}
	r.f.submissions[s.ID] = s
	return nil
}

func (r fakeSubmissionRepo) CreateReview(rv *submission.Review) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	rv.ID = r.f.id()
	r.f.reviews = append(r.f.reviews, *rv)
	return nil
}

func (r fakeSubmissionRepo) ListReviews(submissionID uint) ([]submission.Review, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []submission.Review
	for _, rv := range r.f.reviews {
		if rv.SubmissionID == submissionID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r fakeSubmissionRepo) CountByStatus() (map[submission.Status]int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	out := map[submission.Status]int64{}
	for _, s := range r.f.submissions {
		out[s.Status]++
	}
	return out, nil
}

func (r fakeSubmissionRepo) WithTx(*gorm.DB) repository.SubmissionRepo { return r }

// ---- access requests ----

type fakeAccessRepo struct{ f *fakeStore }

func (r fakeAccessRepo) CreateRequest(req *access.Request) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, existing := range r.f.requests {
		if existing.StudentID == req.StudentID && existing.ProjectID == req.ProjectID && existing.Status == access.StatusPending {
			return gorm.ErrDuplicatedKey
		}
	}
	req.ID = r.f.id()
	r.f.requests[req.ID] = *req
	return nil
}

func (r fakeAccessRepo) GetRequestByID(id uint) (access.Request, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	req, ok := r.f.requests[id]
	if !ok {
		return access.Request{}, gorm.ErrRecordNotFound
	}
	return req, nil
}

func (r fakeAccessRepo) FindPending(studentID, projectID uint) (access.Request, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	for _, req := range r.f.requests {
		if req.StudentID == studentID && req.ProjectID == projectID && req.Status == access.StatusPending {
			return req, nil
		}
	}
	return access.Request{}, gorm.ErrRecordNotFound
}

func (r fakeAccessRepo) enrich(match func(access.Request, project.Project) bool) []access.WithProject {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []access.WithProject
	for _, req := range r.f.requests {
		p := r.f.projects[req.ProjectID]
		if !match(req, p) {
			continue
		}
		out = append(out, access.WithProject{
			Request:      req,
			ProjectTitle: p.Title,
			StudentName:  r.f.users[req.StudentID].Name,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r fakeAccessRepo) ListByStudent(studentID uint) ([]access.WithProject, error) {
	return r.enrich(func(req access.Request, _ project.Project) bool { return req.StudentID == studentID }), nil
}

func (r fakeAccessRepo) ListBySupervisor(supervisorID uint) ([]access.WithProject, error) {
	return r.enrich(func(_ access.Request, p project.Project) bool { return p.SupervisorID == supervisorID }), nil
}

func (r fakeAccessRepo) ListByStudentAndProject(studentID, projectID uint) ([]access.Request, error) {
	var out []access.Request
	for _, wp := range r.enrich(func(req access.Request, _ project.Project) bool {
		return req.StudentID == studentID && req.ProjectID == projectID
	}) {
		out = append(out, wp.Request)
	}
	return out, nil
}

func (r fakeAccessRepo) TransitionStatus(id uint, from, to access.Status, response *string, reviewedAt time.Time) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	req, ok := r.f.requests[id]
	if !ok || req.Status != from {
		return repository.ErrStateChanged
	}
	req.Status = to
	if response != nil {
		req.SupervisorResponse = response
	}
	req.ReviewedAt = &reviewedAt
	r.f.requests[id] = req
	return nil
}

func (r fakeAccessRepo) DeletePending(id uint) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	req, ok := r.f.requests[id]
	if !ok || req.Status != access.StatusPending {
		return repository.ErrStateChanged
	}
	delete(r.f.requests, id)
	return nil
}

func (r fakeAccessRepo) CountByStatus() (map[access.Status]int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	out := map[access.Status]int64{}
	for _, req := range r.f.requests {
		out[req.Status]++
	}
	return out, nil
}

func (r fakeAccessRepo) WithTx(*gorm.DB) repository.AccessRequestRepo { return r }

// ---- audit ----

type fakeAuditRepo struct{ f *fakeStore }

func (r fakeAuditRepo) GetAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	var out []audit.AuditLog
	for i := len(r.f.audits) - 1; i >= 0; i-- {
		a := r.f.audits[i]
		if params.Action != nil && a.Action != *params.Action {
			continue
		}
		if params.ResourceType != nil && a.ResourceType != *params.ResourceType {
			continue
		}
		if params.ResourceID != nil && a.ResourceID != *params.ResourceID {
			continue
		}
		if params.UserID != nil && a.UserID != *params.UserID {
			continue
		}
		out = append(out, a)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out, nil
}

func (r fakeAuditRepo) FindEntry(userID uint, action, resourceType, resourceID string) (audit.AuditLog, error) {
	logs, _ := r.GetAuditLogs(repository.AuditQueryParams{
		UserID: &userID, Action: &action, ResourceType: &resourceType, ResourceID: &resourceID, Limit: 1,
	})
	if len(logs) == 0 {
		return audit.AuditLog{}, gorm.ErrRecordNotFound
	}
	return logs[0], nil
}

func (r fakeAuditRepo) CreateAuditLog(a *audit.AuditLog) error {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	a.ID = r.f.id()
	a.CreatedAt = time.Now()
	r.f.audits = append(r.f.audits, *a)
	return nil
}

func (r fakeAuditRepo) DeleteOldAuditLogs(retentionDays int) (int64, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	kept := r.f.audits[:0]
	var removed int64
	for _, a := range r.f.audits {
		if a.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	r.f.audits = kept
	return removed, nil
}

func (r fakeAuditRepo) WithTx(*gorm.DB) repository.AuditRepo { return r }

// ---- notifier ----

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Message
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, msg notify.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// ---- fixture ----

type fixture struct {
	store      *fakeStore
	objects    *storage.MemoryStore
	notifier   *recordingNotifier
	svc        *Services
	student    user.User
	other      user.User
	supervisor user.User
	admin      user.User
}

func newFixture() *fixture {
	f := &fixture{
		store:    newFakeStore(),
		objects:  storage.NewMemoryStore("http://objects.test"),
		notifier: &recordingNotifier{},
	}
	f.student = f.store.addUser(user.RoleStudent, "alice@uni.test")
	f.other = f.store.addUser(user.RoleStudent, "bob@uni.test")
	f.supervisor = f.store.addUser(user.RoleSupervisor, "dr.smith@uni.test")
	f.admin = f.store.addUser(user.RoleAdmin, "admin@uni.test")
	f.svc = New(f.store.repos(), f.objects, f.notifier, &config.SeedCatalog{Categories: []string{"IoT", "AI"}})
	return f
}

func actorOf(u user.User) types.Actor {
	return types.Actor{UserID: u.ID, Role: u.Role}
}

func pdf(name string) *submission.Upload {
	body := "%PDF-1.4 " + name
	return &submission.Upload{
		FileName:    name,
		ContentType: "application/pdf",
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func ptr[T any](v T) *T { return &v }
