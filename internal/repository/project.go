package repository

import (
	"strings"

	"github.com/linskybing/fyp-portal/internal/domain/project"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (project.Project, error)
	CreateProject(p *project.Project) error
	UpdateProject(p *project.Project) error
	ActivateProject(id uint, grade string) error
	DeleteProject(id uint) error
	ListProjects(filter project.ListFilter) ([]project.Project, error)
	ListProjectsByIDs(ids []uint) ([]project.Project, error)
	CountBySupervisor(supervisorID uint) (int64, error)
	CountAttachmentsByPublicID(publicID string) (int64, error)
	CountByStatus() (map[project.Status]int64, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) withDetails() *gorm.DB {
	return r.db.
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		Preload("Attachments", func(db *gorm.DB) *gorm.DB { return db.Order("slot ASC") }).
		Preload("Supervisor")
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.withDetails().First(&p, id).Error
	return p, err
}

// CreateProject inserts the project with its attachments and links
// already-persisted tags.
func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Omit("Supervisor", "Tags.*").Create(p).Error
}

// UpdateProject saves scalar fields and replaces tags and attachments.
func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	if err := r.db.Omit(clause.Associations).Save(p).Error; err != nil {
		return err
	}
	if err := r.db.Model(p).Omit("Tags.*").Association("Tags").Replace(p.Tags); err != nil {
		return err
	}
	if err := r.db.Where("project_id = ?", p.ID).Delete(&project.Attachment{}).Error; err != nil {
		return err
	}
	for i := range p.Attachments {
		p.Attachments[i].ID = 0
		p.Attachments[i].ProjectID = p.ID
	}
	if len(p.Attachments) > 0 {
		if err := r.db.Create(&p.Attachments).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *DBProjectRepo) ActivateProject(id uint, grade string) error {
	res := r.db.Model(&project.Project{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": project.StatusActive, "grade": grade})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	res := r.db.Select(clause.Associations).Delete(&project.Project{ID: id})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBProjectRepo) ListProjects(filter project.ListFilter) ([]project.Project, error) {
	var projects []project.Project
	query := r.withDetails().Model(&project.Project{})

	if filter.SupervisorID != nil {
		query = query.Where("projects.supervisor_id = ?", *filter.SupervisorID)
	}
	if filter.OwnerID != nil {
		query = query.Where("projects.owner_id = ?", *filter.OwnerID)
	}
	if filter.Status != nil {
		query = query.Where("projects.status = ?", *filter.Status)
	}
	if c := strings.TrimSpace(filter.Category); c != "" {
		query = query.Where("LOWER(projects.category) = ?", strings.ToLower(c))
	}
	if y := strings.TrimSpace(filter.AcademicYear); y != "" {
		query = query.Where("projects.academic_year = ?", y)
	}
	if t := strings.TrimSpace(filter.Tag); t != "" {
		query = query.Where(`EXISTS (
			SELECT 1 FROM project_tags pt JOIN tags t ON t.id = pt.tag_id
			WHERE pt.project_id = projects.id AND t.name = ?)`, strings.ToLower(t))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(projects.title) LIKE ? OR LOWER(projects.description) LIKE ?", like, like)
	}

	query = query.Order("projects.created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByIDs(ids []uint) ([]project.Project, error) {
	if len(ids) == 0 {
		return []project.Project{}, nil
	}
	var projects []project.Project
	err := r.withDetails().Where("id IN ?", ids).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) CountBySupervisor(supervisorID uint) (int64, error) {
	var n int64
	err := r.db.Model(&project.Project{}).Where("supervisor_id = ?", supervisorID).Count(&n).Error
	return n, err
}

// CountAttachmentsByPublicID reports how many project attachments point at
// the stored object publicID.
func (r *DBProjectRepo) CountAttachmentsByPublicID(publicID string) (int64, error) {
	var n int64
	err := r.db.Model(&project.Attachment{}).Where("public_id = ?", publicID).Count(&n).Error
	return n, err
}

func (r *DBProjectRepo) CountByStatus() (map[project.Status]int64, error) {
	var rows []struct {
		Status project.Status
		Count  int64
	}
	if err := r.db.Model(&project.Project{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[project.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
