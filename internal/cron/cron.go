package cron

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/fyp-portal/internal/application"
)

// AuditCleaner is the part of the audit service the retention task needs.
type AuditCleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

var _ AuditCleaner = (*application.AuditService)(nil)

// StartCleanupTask deletes audit entries older than retentionDays now and
// then every interval until ctx is done. A non-positive retention disables it.
func StartCleanupTask(ctx context.Context, cleaner AuditCleaner, retentionDays int, interval time.Duration) {
	if retentionDays <= 0 {
		log.Println("[cron] audit retention disabled")
		return
	}
	go func() {
		log.Printf("[cron] starting audit cleanup (retention: %d days)", retentionDays)

		runCleanup(cleaner, retentionDays)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				runCleanup(cleaner, retentionDays)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func runCleanup(cleaner AuditCleaner, retentionDays int) {
	n, err := cleaner.CleanupOldLogs(retentionDays)
	if err != nil {
		log.Printf("[cron] failed to cleanup old audit logs: %v", err)
		return
	}
	log.Printf("[cron] removed %d audit entries older than %d days", n, retentionDays)
}
