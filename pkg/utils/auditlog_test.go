package utils

import (
	"testing"

	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestNewAuditLog(t *testing.T) {
	actor := types.Actor{UserID: 3, Role: user.RoleSupervisor, IP: "127.0.0.1", UserAgent: "curl/8"}

	entry := NewAuditLog(actor, "review", "submission", "12", map[string]string{"status": "Pending"}, nil, "approved")
	assert.Equal(t, uint(3), entry.UserID)
	assert.Equal(t, "12", entry.ResourceID)
	assert.JSONEq(t, `{"status":"Pending"}`, string(entry.OldData))
	assert.Nil(t, entry.NewData)
	assert.Equal(t, "curl/8", entry.UserAgent)

	// unmarshalable snapshots are dropped, not fatal
	entry = NewAuditLog(actor, "x", "y", "1", nil, make(chan int), "")
	assert.Empty(t, entry.NewData)
}
