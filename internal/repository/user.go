package repository

import (
	"strings"

	"github.com/linskybing/fyp-portal/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(u *user.User) error
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	ListUsers(filter user.ListFilter) ([]user.User, error)
	ListSupervisors() ([]user.User, error)
	UpdateUser(u *user.User) error
	CountByRole() (map[user.Role]int64, error)
	CountInactive() (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsers(filter user.ListFilter) ([]user.User, error) {
	var users []user.User
	query := r.db.Model(&user.User{})
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	err := query.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListSupervisors() ([]user.User, error) {
	var users []user.User
	err := r.db.Where("role = ? AND active = ?", user.RoleSupervisor, true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *DBUserRepo) UpdateUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) CountByRole() (map[user.Role]int64, error) {
	var rows []struct {
		Role  user.Role
		Count int64
	}
	if err := r.db.Model(&user.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[user.Role]int64, len(rows))
	for _, row := range rows {
		out[row.Role] = row.Count
	}
	return out, nil
}

func (r *DBUserRepo) CountInactive() (int64, error) {
	var n int64
	err := r.db.Model(&user.User{}).Where("active = ?", false).Count(&n).Error
	return n, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
