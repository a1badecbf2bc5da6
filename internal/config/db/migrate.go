package db

import (
	"fmt"

	"github.com/linskybing/fyp-portal/internal/domain/access"
	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/linskybing/fyp-portal/internal/domain/tag"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"gorm.io/gorm"
)

// partialIndexes back the workflow invariants. gorm tags cannot express a
// WHERE clause, so they are created by hand after AutoMigrate.
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_access_requests_pending_pair
		ON access_requests (student_id, project_id) WHERE status = 'Pending'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_submissions_active_student
		ON submissions (student_id) WHERE status <> 'Rejected'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_project_attachments_public_id
		ON project_attachments (public_id) WHERE public_id <> ''`,
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&user.User{},
		&tag.Tag{},
		&project.Project{},
		&project.Attachment{},
		&submission.Submission{},
		&submission.Review{},
		&access.Request{},
		&audit.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// access_requests has no gorm association to hang the cascade on.
	if err := gdb.Exec(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_access_requests_project') THEN
		ALTER TABLE access_requests ADD CONSTRAINT fk_access_requests_project
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE;
	END IF;
END $$;`).Error; err != nil {
		return fmt.Errorf("access request foreign key: %w", err)
	}

	for _, stmt := range partialIndexes {
		if err := gdb.Exec(stmt).Error; err != nil {
			return fmt.Errorf("partial index: %w", err)
		}
	}
	return nil
}
