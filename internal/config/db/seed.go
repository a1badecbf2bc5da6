package db

import (
	"errors"
	"log"
	"strings"

	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/tag"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed upserts the catalog tags and admin accounts. Existing admins keep
// their current password.
func Seed(gdb *gorm.DB, catalog *config.SeedCatalog) error {
	if catalog == nil {
		return nil
	}

	for _, name := range tag.NormalizeAll(catalog.Tags) {
		t := tag.Tag{Name: name}
		if err := gdb.Where(tag.Tag{Name: name}).FirstOrCreate(&t).Error; err != nil {
			return err
		}
	}

	for _, a := range catalog.Admins {
		email := strings.ToLower(strings.TrimSpace(a.Email))
		var existing user.User
		err := gdb.Where("email = ?", email).First(&existing).Error
		if err == nil {
			if existing.Role != user.RoleAdmin {
				log.Printf("[seed] %s exists with role %s, not promoting", email, existing.Role)
			}
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := user.User{
			Role:         user.RoleAdmin,
			Email:        email,
			Name:         a.Name,
			PasswordHash: string(hashed),
			Active:       true,
		}
		if a.StaffID != "" {
			staffID := a.StaffID
			admin.StaffID = &staffID
		}
		if err := gdb.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("[seed] created admin %s", email)
	}
	return nil
}
