package user

type Role string

const (
	RoleUser    Role = "user"    // Regular employee, no admin screens
	RoleAdmin   Role = "admin"   // Full access
	RoleHR      Role = "hr"      // Manages employee records and attendance
	RoleManager Role = "manager" // Read-only access to reports and records
)

// Roles lists every assignable role in display order.
var Roles = []Role{RoleUser, RoleAdmin, RoleHR, RoleManager}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, role := range Roles {
		if role == r {
			return true
		}
	}
	return false
}

// IsAdmin checks if the role has full access
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanManageEmployees checks if the role may create, edit or delete employees
func (r Role) CanManageEmployees() bool {
	return HasPermission(r, PermissionEmployeeManage)
}
