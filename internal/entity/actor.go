package entity

// Platform roles. Mirrors the profiles.role column.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleTeacher    = "teacher"
	RoleStudent    = "student"
	RoleParent     = "parent"
	RoleSales      = "sales"
	RoleHR         = "hr"
)

// Actor is the authenticated entity performing an operation.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Elevated reports whether the actor sees every lead, regardless of
// assignment.
func (a *Actor) Elevated() bool {
	if a == nil {
		return false
	}
	return a.Role == RoleSuperAdmin || a.Role == RoleAdmin
}
