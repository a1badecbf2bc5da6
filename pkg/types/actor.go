package types

import "github.com/linskybing/fyp-portal/internal/domain/user"

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID    uint
	Role      user.Role
	IP        string
	UserAgent string
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
