package user

type Permission string

const (
	// Attendance
	PermissionAttendanceViewAll     Permission = "attendance.view_all"
	PermissionAttendanceEditRemarks Permission = "attendance.edit_remarks"

	// Employee Management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceViewAll,
		PermissionAttendanceEditRemarks,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
	},
	RoleHR: {
		PermissionAttendanceViewAll,
		PermissionAttendanceEditRemarks,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
	},
	RoleManager: {
		// Manager can look but not touch
		PermissionAttendanceViewAll,
		PermissionEmployeeViewAll,
	},
	RoleUser: {
		// No admin access
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
