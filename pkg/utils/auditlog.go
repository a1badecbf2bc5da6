package utils

import (
	"encoding/json"
	"log"

	"github.com/linskybing/fyp-portal/internal/domain/audit"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/pkg/types"
)

// NewAuditLog snapshots before and after as JSON. Marshal failures are
// logged and leave the snapshot empty.
func NewAuditLog(actor types.Actor, action, resourceType, resourceID string, before, after any, description string) *audit.AuditLog {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			log.Printf("[audit] marshal oldData error: %v", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			log.Printf("[audit] marshal newData error: %v", err)
		}
	}

	return &audit.AuditLog{
		UserID:       actor.UserID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    actor.IP,
		UserAgent:    actor.UserAgent,
		Description:  description,
	}
}

var LogAudit = func(
	actor types.Actor,
	action string,
	resourceType string,
	resourceID string,
	before any,
	after any,
	description string,
	repos repository.AuditRepo,
) (*audit.AuditLog, error) {
	entry := NewAuditLog(actor, action, resourceType, resourceID, before, after, description)
	if err := repos.CreateAuditLog(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
