package user

import "time"

type Role string

const (
	RoleStudent    Role = "student"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleSupervisor, RoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role reviews work rather than submitting it.
func (r Role) IsStaff() bool {
	return r == RoleSupervisor || r == RoleAdmin
}

// User is a portal account. Accounts are deactivated, never deleted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Role         Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Department   *string   `gorm:"size:255" json:"department,omitempty"`
	StaffID      *string   `gorm:"size:64;column:staff_id" json:"staff_id,omitempty"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
