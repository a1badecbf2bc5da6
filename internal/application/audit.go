package application

import (
	"log"
	"strconv"

	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/pkg/types"
	"github.com/linskybing/fyp-portal/pkg/utils"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

type AuditService struct {
	Repos    *repository.Repos
	Activity *ActivityHub
}

func NewAuditService(repos *repository.Repos, hub *ActivityHub) *AuditService {
	return &AuditService{
		Repos:    repos,
		Activity: hub,
	}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if params.Limit <= 0 {
		params.Limit = defaultAuditLimit
	}
	if params.Limit > maxAuditLimit {
		params.Limit = maxAuditLimit
	}
	if params.Offset < 0 {
		params.Offset = 0
	}
	logs, err := s.Repos.Audit.GetAuditLogs(params)
	if err != nil {
		return nil, translate(err, "audit log")
	}
	return logs, nil
}

func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}

// Record writes an entry outside any transaction and publishes it.
// Failures are logged only.
func (s *AuditService) Record(actor types.Actor, action, resourceType string, resourceID uint, before, after any, description string) {
	if s == nil {
		return
	}
	entry, err := utils.LogAudit(actor, action, resourceType, idString(resourceID), before, after, description, s.Repos.Audit)
	if err != nil {
		log.Printf("[audit] %s %s/%d: %v", action, resourceType, resourceID, err)
		return
	}
	s.Activity.Publish(entry)
}

// recordTx writes an entry with the transaction's repositories. The
// caller publishes it after commit.
func recordTx(tx *repository.Repos, actor types.Actor, action, resourceType string, resourceID uint, before, after any, description string) (*audit.AuditLog, error) {
	entry, err := utils.LogAudit(actor, action, resourceType, idString(resourceID), before, after, description, tx.Audit)
	if err != nil {
		return nil, storageErr("failed to write audit log", err)
	}
	return entry, nil
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
