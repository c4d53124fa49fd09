package user

import "time"

// Role gates the admin-only surfaces (settings, payroll, recruitment writes).
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Role          Role
	EmailVerified bool
	GoogleID      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanManage reports whether the role may mutate HR-wide resources. Admin and
// HR may read everything; only they may write outside their own records.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleHR
}
