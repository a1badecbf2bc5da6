package repository

import (
	"github.com/linskybing/fyp-portal/internal/domain/tag"
	"gorm.io/gorm"
)

type TagRepo interface {
	ListTags() ([]tag.Tag, error)
	GetTagByID(id uint) (tag.Tag, error)
	CreateTag(t *tag.Tag) error
	UpdateTag(t *tag.Tag) error
	DeleteTag(id uint) error
	FindOrCreateByNames(names []string) ([]tag.Tag, error)
	WithTx(tx *gorm.DB) TagRepo
}

type DBTagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *DBTagRepo {
	return &DBTagRepo{
		db: db,
	}
}

func (r *DBTagRepo) ListTags() ([]tag.Tag, error) {
	var tags []tag.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *DBTagRepo) GetTagByID(id uint) (tag.Tag, error) {
	var t tag.Tag
	err := r.db.First(&t, id).Error
	return t, err
}

func (r *DBTagRepo) CreateTag(t *tag.Tag) error {
	return r.db.Create(t).Error
}

func (r *DBTagRepo) UpdateTag(t *tag.Tag) error {
	return r.db.Save(t).Error
}

func (r *DBTagRepo) DeleteTag(id uint) error {
	res := r.db.Delete(&tag.Tag{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindOrCreateByNames resolves already-normalized names, creating unknown ones.
func (r *DBTagRepo) FindOrCreateByNames(names []string) ([]tag.Tag, error) {
	tags := make([]tag.Tag, 0, len(names))
	for _, name := range names {
		t := tag.Tag{Name: name}
		if err := r.db.Where(tag.Tag{Name: name}).FirstOrCreate(&t).Error; err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func (r *DBTagRepo) WithTx(tx *gorm.DB) TagRepo {
	if tx == nil {
		return r
	}
	return &DBTagRepo{
		db: tx,
	}
}
