package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/tag"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/pkg/types"
	"gorm.io/gorm"
)

type TagService struct {
	Repos *repository.Repos
	Audit *AuditService
}

func NewTagService(repos *repository.Repos, auditSvc *AuditService) *TagService {
	return &TagService{
		Repos: repos,
		Audit: auditSvc,
	}
}

func (s *TagService) List() ([]tag.Tag, error) {
	tags, err := s.Repos.Tag.ListTags()
	if err != nil {
		return nil, translate(err, "tag")
	}
	if tags == nil {
		tags = []tag.Tag{}
	}
	return tags, nil
}

func (s *TagService) Create(actor types.Actor, input tag.TagInput) (*tag.Tag, error) {
	name := tag.Normalize(input.Name)
	if name == "" {
		return nil, validationErr("tag name is required")
	}
	t := &tag.Tag{Name: name}
	if err := s.Repos.Tag.CreateTag(t); err != nil {
		return nil, tagWriteErr(name, err)
	}
	s.Audit.Record(actor, audit.ActionCreate, audit.ResourceTag, t.ID, nil, t, fmt.Sprintf("created tag %q", name))
	return t, nil
}

func (s *TagService) Update(actor types.Actor, id uint, input tag.TagInput) (*tag.Tag, error) {
	name := tag.Normalize(input.Name)
	if name == "" {
		return nil, validationErr("tag name is required")
	}
	t, err := s.Repos.Tag.GetTagByID(id)
	if err != nil {
		return nil, translate(err, "tag")
	}
	before := t
	t.Name = name
	if err := s.Repos.Tag.UpdateTag(&t); err != nil {
		return nil, tagWriteErr(name, err)
	}
	s.Audit.Record(actor, audit.ActionUpdate, audit.ResourceTag, t.ID, before, t, fmt.Sprintf("renamed tag %q to %q", before.Name, name))
	return &t, nil
}

func (s *TagService) Delete(actor types.Actor, id uint) error {
	t, err := s.Repos.Tag.GetTagByID(id)
	if err != nil {
		return translate(err, "tag")
	}
	if err := s.Repos.Tag.DeleteTag(id); err != nil {
		return translate(err, "tag")
	}
	s.Audit.Record(actor, audit.ActionDelete, audit.ResourceTag, id, t, nil, fmt.Sprintf("deleted tag %q", t.Name))
	return nil
}

func tagWriteErr(name string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicateErr(fmt.Sprintf("tag %q already exists", name), err)
	}
	return translate(err, "tag")
}
